package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/9novikoff/TaskManagementSystem/internal/domain"
)

// Validation limits.
const (
	passwordMinLength        = 3
	passwordMaxLength        = 30
	usernameOrEmailMinLength = 3
	taskTitleMaxLength       = 500
	taskDescriptionMaxLength = 500
)

// validSortColumns is the whitelist of columns a task listing may be
// ordered by. Matching is case-insensitive.
var validSortColumns = []string{"duedate", "priority", "status"}

var (
	upperRe   = regexp.MustCompile(`[A-Z]`)
	lowerRe   = regexp.MustCompile(`[a-z]`)
	digitRe   = regexp.MustCompile(`[0-9]`)
	specialRe = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// fieldValidate performs single-field syntactic checks (email format).
var fieldValidate = validator.New()

// FieldViolation is one violated validation rule.
type FieldViolation struct {
	Field   string
	Message string
}

// JoinViolations concatenates rule messages with single spaces, preserving
// the order the rules were declared in. Multiple violation lists are joined
// in the order given.
func JoinViolations(lists ...[]FieldViolation) string {
	var messages []string
	for _, list := range lists {
		for _, v := range list {
			messages = append(messages, v.Message)
		}
	}
	return strings.Join(messages, " ")
}

// ValidateRegisterInput checks a registration payload. All violations are
// collected; nothing short-circuits.
func ValidateRegisterInput(in RegisterInput) []FieldViolation {
	var violations []FieldViolation

	if in.Username == "" {
		violations = append(violations, FieldViolation{"Username", "Username must not be empty."})
	}
	if utf8.RuneCountInString(in.Username) < usernameOrEmailMinLength {
		violations = append(violations, FieldViolation{
			"Username",
			fmt.Sprintf("Username must be at least %d characters long.", usernameOrEmailMinLength),
		})
	}

	if in.Email == "" {
		violations = append(violations, FieldViolation{"Email", "Email must not be empty."})
	}
	if err := fieldValidate.Var(in.Email, "required,email"); err != nil {
		violations = append(violations, FieldViolation{"Email", "Email is not a valid email address."})
	}

	violations = append(violations, validatePassword(in.Password)...)

	return violations
}

// ValidateLoginInput checks a login payload. The password is subject to the
// same composition rules as registration; the policy is fixed, so any
// password that registered successfully also passes here.
func ValidateLoginInput(in LoginInput) []FieldViolation {
	var violations []FieldViolation

	if in.UsernameOrEmail == "" {
		violations = append(violations, FieldViolation{"UsernameOrEmail", "Username or email must not be empty."})
	}
	if utf8.RuneCountInString(in.UsernameOrEmail) < usernameOrEmailMinLength {
		violations = append(violations, FieldViolation{
			"UsernameOrEmail",
			fmt.Sprintf("Username or email must be at least %d characters long.", usernameOrEmailMinLength),
		})
	}

	violations = append(violations, validatePassword(in.Password)...)

	return violations
}

// validatePassword applies the shared password composition rules.
func validatePassword(password string) []FieldViolation {
	var violations []FieldViolation

	if password == "" {
		violations = append(violations, FieldViolation{"Password", "Password must not be empty."})
	}
	if utf8.RuneCountInString(password) < passwordMinLength {
		violations = append(violations, FieldViolation{
			"Password",
			fmt.Sprintf("Password must be at least %d characters long.", passwordMinLength),
		})
	}
	if utf8.RuneCountInString(password) > passwordMaxLength {
		violations = append(violations, FieldViolation{
			"Password",
			fmt.Sprintf("Password must not exceed %d characters.", passwordMaxLength),
		})
	}
	if !upperRe.MatchString(password) {
		violations = append(violations, FieldViolation{"Password", "Password must contain at least one uppercase letter."})
	}
	if !lowerRe.MatchString(password) {
		violations = append(violations, FieldViolation{"Password", "Password must contain at least one lowercase letter."})
	}
	if !digitRe.MatchString(password) {
		violations = append(violations, FieldViolation{"Password", "Password must contain at least one number."})
	}
	if !specialRe.MatchString(password) {
		violations = append(violations, FieldViolation{"Password", "Password must contain at least one special character."})
	}

	return violations
}

// ValidateTaskInput checks a task create/update payload. The due date, if
// present, must not be before the supplied current time.
func ValidateTaskInput(in TaskInput, now time.Time) []FieldViolation {
	var violations []FieldViolation

	if in.Title == "" {
		violations = append(violations, FieldViolation{"Title", "Title must not be empty."})
	}
	if utf8.RuneCountInString(in.Title) > taskTitleMaxLength {
		violations = append(violations, FieldViolation{
			"Title",
			fmt.Sprintf("Title must not exceed %d characters.", taskTitleMaxLength),
		})
	}

	if utf8.RuneCountInString(in.Description) > taskDescriptionMaxLength {
		violations = append(violations, FieldViolation{
			"Description",
			fmt.Sprintf("Description must not exceed %d characters.", taskDescriptionMaxLength),
		})
	}

	if in.DueDate != nil && in.DueDate.Before(now) {
		violations = append(violations, FieldViolation{"DueDate", "Due date cannot be in the past."})
	}

	if in.Status == "" {
		violations = append(violations, FieldViolation{"Status", "Status is required."})
	} else if !domain.TaskStatus(in.Status).IsValid() {
		violations = append(violations, FieldViolation{"Status", "Invalid status value."})
	}

	if in.Priority == "" {
		violations = append(violations, FieldViolation{"Priority", "Priority is required."})
	} else if !domain.TaskPriority(in.Priority).IsValid() {
		violations = append(violations, FieldViolation{"Priority", "Invalid priority value."})
	}

	return violations
}

// ValidateTaskFilter checks the date range of a listing filter.
func ValidateTaskFilter(f TaskFilter) []FieldViolation {
	var violations []FieldViolation

	if f.DateFrom != nil && f.DateTo != nil && f.DateFrom.After(*f.DateTo) {
		violations = append(violations, FieldViolation{"DateFrom", "DateFrom must be earlier than or equal to DateTo."})
	}

	return violations
}

// ValidateTaskSort checks that a non-empty sort column is whitelisted.
func ValidateTaskSort(s TaskSort) []FieldViolation {
	var violations []FieldViolation

	if s.SortColumn != "" && !isValidSortColumn(s.SortColumn) {
		violations = append(violations, FieldViolation{
			"SortColumn",
			fmt.Sprintf("SortColumn must be one of the following: %s", strings.Join(validSortColumns, ", ")),
		})
	}

	return violations
}

// ValidateTaskPagination checks page bounds and the both-or-neither rule.
func ValidateTaskPagination(p TaskPagination) []FieldViolation {
	var violations []FieldViolation

	if p.PageSize != nil && *p.PageSize <= 0 {
		violations = append(violations, FieldViolation{"PageSize", "PageSize must be greater than 0."})
	}
	if p.PageNumber != nil && *p.PageNumber <= 0 {
		violations = append(violations, FieldViolation{"PageNumber", "PageNumber must be greater than 0."})
	}
	if (p.PageSize == nil) != (p.PageNumber == nil) {
		violations = append(violations, FieldViolation{"Pagination", "Both PageSize and PageNumber must be provided together."})
	}

	return violations
}

func isValidSortColumn(column string) bool {
	lowered := strings.ToLower(column)
	for _, valid := range validSortColumns {
		if lowered == valid {
			return true
		}
	}
	return false
}
