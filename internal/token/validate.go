package token

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	tokenPathPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+(\.[A-Za-z0-9_-]+)*$`)
)

// validatorInstance configures and returns the shared validator instance used
// for document shape checks.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("token_path", func(fl validator.FieldLevel) bool {
			return tokenPathPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("theme_mode", func(fl validator.FieldLevel) bool {
			return Mode(fl.Field().String()).Valid()
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the configured validator instance for use by other
// packages.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// ValidateDocuments checks the three source documents for structural
// problems: unparseable leaves, malformed reference paths, missing Theme mode
// branches, and color tokens that are not hex literals. It returns the first
// problem found as a ValidationError.
func ValidateDocuments(tokens, theme, uikit Document) error {
	if len(tokens) == 0 {
		return apperrors.NewValidationError("tokens", "document is empty", nil)
	}
	if err := validateTokenLeaves(tokens, ""); err != nil {
		return err
	}

	for _, mode := range []Mode{ModeLight, ModeDark} {
		branch := theme.ModeBranch(mode)
		if branch == nil {
			return apperrors.NewValidationError("theme", fmt.Sprintf("missing %q mode branch", mode), nil)
		}
		if err := validateReferenceLeaves(branch, string(mode)); err != nil {
			return err
		}
	}

	if err := validateReferenceLeaves(uikit, "uikit"); err != nil {
		return err
	}

	return nil
}

func validateTokenLeaves(doc Document, prefix string) error {
	v := validatorInstance()
	for key, node := range doc {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if branch, ok := asMap(node); ok {
			if err := validateTokenLeaves(branch, path); err != nil {
				return err
			}
			continue
		}
		value, ok := CoerceValue(node)
		if !ok {
			return apperrors.NewValidationError(path, "token leaf is not a primitive value", nil)
		}
		if strings.HasPrefix(path, "color.") && value.Kind == KindString {
			if err := v.Var(value.Str, "hexcolor"); err != nil {
				return apperrors.NewValidationError(path, fmt.Sprintf("color token %q is not a hex literal", value.Str), err)
			}
		}
	}
	return nil
}

func validateReferenceLeaves(doc Document, prefix string) error {
	v := validatorInstance()
	for key, node := range doc {
		path := prefix + "." + key
		if branch, ok := asMap(node); ok && !isReferenceObject(branch) {
			if err := validateReferenceLeaves(branch, path); err != nil {
				return err
			}
			continue
		}
		ref, err := ParseReference(node)
		if err != nil {
			return apperrors.NewValidationError(path, "leaf is neither a literal nor a known reference", err)
		}
		if !ref.IsLiteral() {
			if err := v.Var(ref.Name, "token_path"); err != nil {
				return apperrors.NewValidationError(path, fmt.Sprintf("reference path %q is malformed", ref.Name), err)
			}
		}
	}
	return nil
}
