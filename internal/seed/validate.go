package seed

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed schema.cue
var schemaCUE string

// validate unifies the decoded seed document with the embedded CUE schema
// and requires the result to be fully concrete. Errors carry CUE's path
// information ("habits.2.periodicity: ...") so a bad file points at the
// offending entry.
func validate(f file) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile seed schema: %w", err)
	}

	doc := ctx.Encode(f)
	if err := doc.Err(); err != nil {
		return fmt.Errorf("encode seed document: %w", err)
	}

	unified := schema.Unify(doc)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%s", cueerrors.Details(err, nil))
	}
	return nil
}
