package ers

import "fmt"

// Wrap annotates an error with the string form of the arguments. Wrap
// returns nil when the error is nil. The result is compatible with
// errors.Is and errors.As.
func Wrap(err error, annotation ...any) error {
	if err == nil {
		return nil
	}
	if len(annotation) == 0 {
		return err
	}

	return fmt.Errorf("%s: %w", fmt.Sprint(annotation...), err)
}

// Wrapf annotates an error with a formatted string. Wrapf returns nil
// when the error is nil.
func Wrapf(err error, tmpl string, args ...any) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%s: %w", fmt.Sprintf(tmpl, args...), err)
}

// When returns the error if the condition is true, and nil otherwise.
func When(cond bool, err error) error {
	if !cond {
		return nil
	}

	return err
}

// ExtractErrors iterates through a list of untyped objects and removes the
// errors from the list, returning both the errors and the remaining
// items.
func ExtractErrors(in []any) (rest []any, errs []error) {
	for idx := range in {
		switch val := in[idx].(type) {
		case nil:
			continue
		case error:
			errs = append(errs, val)
		case func() error:
			if e := val(); e != nil {
				errs = append(errs, e)
			}
		case string:
			if val == "" {
				continue
			}
			rest = append(rest, val)
		default:
			rest = append(rest, val)
		}
	}
	return
}
