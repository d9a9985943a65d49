package validator

import (
	"net/mail"
	"strings"
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

func ValidateRegister(email, password string) ValidationErrors {
	errs := make(ValidationErrors)

	validateEmail(email, errs)

	if password == "" {
		errs.Add("password", "Password is required")
	}

	return errs
}

func ValidateLogin(email, password string) ValidationErrors {
	errs := make(ValidationErrors)

	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add("email", "Email is required")
	}

	if password == "" {
		errs.Add("password", "Password is required")
	}

	return errs
}

func ValidateCertificate(title, date string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(title) == "" {
		errs.Add("title", "Title is required")
	}

	if strings.TrimSpace(date) == "" {
		errs.Add("date", "Date is required")
	}

	return errs
}

func ValidateProject(title, description string, technologies []string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(title) == "" {
		errs.Add("title", "Title is required")
	}

	if strings.TrimSpace(description) == "" {
		errs.Add("description", "Description is required")
	}

	if !hasNonEmptyEntry(technologies) {
		errs.Add("technologies", "Technologies must contain at least one entry")
	}

	return errs
}

func ValidateSkill(skillName string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(skillName) == "" {
		errs.Add("skill_name", "Skill name is required")
	}

	return errs
}

func ValidateContact(name, email, message string) ValidationErrors {
	errs := make(ValidationErrors)

	if strings.TrimSpace(name) == "" {
		errs.Add("name", "Name is required")
	}

	validateEmail(email, errs)

	if strings.TrimSpace(message) == "" {
		errs.Add("message", "Message is required")
	}

	return errs
}

func validateEmail(email string, errs ValidationErrors) {
	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Invalid email address")
	}
}

func hasNonEmptyEntry(entries []string) bool {
	for _, e := range entries {
		if strings.TrimSpace(e) != "" {
			return true
		}
	}
	return false
}
