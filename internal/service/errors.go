package service

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompleteClaim: one or more order fields missing from a
	// verification claim. Client-correctable.
	ErrIncompleteClaim = errors.New("incomplete order claim")

	// ErrInvalidSignature: the claimed signature does not match the one
	// recomputed from the order fields.
	ErrInvalidSignature = errors.New("invalid order signature")

	// ErrSignatureLength: claimed signature has the wrong length. Checked
	// before the byte comparison; still a signature rejection.
	ErrSignatureLength = fmt.Errorf("signature length mismatch: %w", ErrInvalidSignature)

	// ErrIncompleteSubmission: mandatory payment-form fields missing.
	ErrIncompleteSubmission = errors.New("incomplete payment submission")

	// ErrPersistence: the record could not be written.
	ErrPersistence = errors.New("payment record persistence failed")
)
