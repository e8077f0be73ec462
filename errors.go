package md2html

import (
	"errors"

	"github.com/alnah/go-md2html/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrInvalidEngine  = errors.New("invalid engine")
	ErrHTMLConversion = pipeline.ErrHTMLConversion
)
