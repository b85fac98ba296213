// Package models defines the core domain models for Invoice Maker.
//
// # Models
//
//   - Invoice: the single document edited during a session
//   - Party: the issuing business (From) or the billed client (To)
//   - LineItem: one billable row on an invoice
//   - Signature: a typed or uploaded signature, or none
//   - ImageRef: an embeddable data reference for logos and signatures
//
// # Editing
//
// An Invoice is treated as an immutable value. Every edit goes through
// Invoice.Apply, which deep-copies the document before running the edits,
// so a value handed to the preview or the totals engine never changes
// underneath it:
//
//	next, err := inv.Apply(models.SetTaxRate(10), models.AddLineItem())
//
// Derived amounts (subtotal, tax, total) are never stored on the document;
// see package calculator.
package models
