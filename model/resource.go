package model

import "fmt"

// ReferenceKind classifies how a page references an external resource.
type ReferenceKind string

const (
	RefScript     ReferenceKind = "script"
	RefStyle      ReferenceKind = "style"
	RefFrame      ReferenceKind = "frame"
	RefImage      ReferenceKind = "image"
	RefInlineCall ReferenceKind = "inline-call"
)

// DetectedResource is one external resource reference found in page markup.
// It exists only within a single analysis run and is never persisted.
type DetectedResource struct {
	Domain        string        `json:"domain"`
	ReferenceKind ReferenceKind `json:"reference_kind"`
	SourcePageURL string        `json:"source_page_url"`
}

// Validate performs schema validation on a DetectedResource.
func (r DetectedResource) Validate() error {
	if r.Domain == "" {
		return fmt.Errorf("DetectedResource: Domain cannot be empty")
	}
	switch r.ReferenceKind {
	case RefScript, RefStyle, RefFrame, RefImage, RefInlineCall:
	default:
		return fmt.Errorf("DetectedResource: invalid ReferenceKind %q", r.ReferenceKind)
	}
	return nil
}

// Page is one fetched page of the analyzed site.
type Page struct {
	Path    string // conventional path ("" for homepage)
	URL     string
	Headers map[string][]string
	Body    []byte
}
