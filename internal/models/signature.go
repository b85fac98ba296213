package models

import "strings"

// Signature is either a TypedSignature or an ImageSignature.
// A nil Signature means the invoice is unsigned.
type Signature interface {
	// Kind is "typed" or "image".
	Kind() string

	isSignature()
}

// Signature kinds.
const (
	SignatureTyped = "typed"
	SignatureImage = "image"
)

// TypedSignature is a name typed by the issuer and rendered in a script face.
type TypedSignature struct {
	Text string
}

// ImageSignature is an uploaded signature image.
type ImageSignature struct {
	Data ImageRef
}

func (TypedSignature) Kind() string { return SignatureTyped }
func (ImageSignature) Kind() string { return SignatureImage }

func (TypedSignature) isSignature() {}
func (ImageSignature) isSignature() {}

// maxTypedSignature matches the input limit of the signature field.
const maxTypedSignature = 48

// NewTypedSignature returns a typed signature, or nil when text is blank.
// Text longer than the field limit is truncated.
func NewTypedSignature(text string) Signature {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if r := []rune(text); len(r) > maxTypedSignature {
		text = string(r[:maxTypedSignature])
	}
	return TypedSignature{Text: text}
}

// NewImageSignature returns an image signature, or nil when ref is empty.
func NewImageSignature(ref ImageRef) Signature {
	if ref.IsZero() {
		return nil
	}
	return ImageSignature{Data: ref}
}
