package validate

import (
	"testing"

	"creamery/models"
)

func goodCustomer() models.Customer {
	return models.Customer{
		FullName: "Noa Levi",
		Phone:    "+972541234567",
		Email:    "noa@example.com",
		City:     "Haifa",
		Address:  "Herzl 12",
	}
}

func TestCustomerAccepts(t *testing.T) {
	if err := Customer(goodCustomer()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCustomerRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.Customer)
		field  string
	}{
		{"missing city", func(c *models.Customer) { c.City = "" }, "customer"},
		{"whitespace address", func(c *models.Customer) { c.Address = "   " }, "customer"},
		{"one-word name", func(c *models.Customer) { c.FullName = "Noa" }, "full_name"},
		{"short phone", func(c *models.Customer) { c.Phone = "123" }, "phone"},
		{"letters in phone", func(c *models.Customer) { c.Phone = "05x1234567" }, "phone"},
		{"email without domain", func(c *models.Customer) { c.Email = "noa@" }, "email"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := goodCustomer()
			tc.mutate(&c)
			err := Customer(c)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if err.Field != tc.field {
				t.Fatalf("field = %q, want %q (%s)", err.Field, tc.field, err.Reason)
			}
			if err.Reason == "" {
				t.Fatal("reason must be human-readable, not empty")
			}
		})
	}
}

func TestDefaultPhonePattern(t *testing.T) {
	valid := []string{"054123456", "+972541234567", "0541234567"}
	invalid := []string{"", "12345678", "+97254123456789", "phone"}

	for _, p := range valid {
		if !Phone(p) {
			t.Errorf("Phone(%q) = false, want true", p)
		}
	}
	for _, p := range invalid {
		if Phone(p) {
			t.Errorf("Phone(%q) = true, want false", p)
		}
	}
}

// The pattern must be picked up whenever it is compiled, not only when
// the env var was set before this package initialized.
func TestCompilePhonePatternReadsEnv(t *testing.T) {
	t.Setenv("PHONE_PATTERN", `^05\d{8}$`)

	re := compilePhonePattern()
	if !re.MatchString("0541234567") {
		t.Error("strict pattern must accept 0541234567")
	}
	if re.MatchString("+972541234567") {
		t.Error("strict pattern must reject +972541234567")
	}
}

func TestCompilePhonePatternFallsBack(t *testing.T) {
	t.Setenv("PHONE_PATTERN", "(")

	re := compilePhonePattern()
	if !re.MatchString("0541234567") {
		t.Error("broken pattern must fall back to the default")
	}
}

func TestZipAndNotesAreOptional(t *testing.T) {
	c := goodCustomer()
	c.Zip = ""
	c.Notes = ""
	if err := Customer(c); err != nil {
		t.Fatalf("zip/notes must be optional: %v", err)
	}
}
