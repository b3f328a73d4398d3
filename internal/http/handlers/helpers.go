package handlers

import "fmt"

func errMissingField(name string) error {
	return fmt.Errorf("field %q is required", name)
}
