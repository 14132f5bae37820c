package individuals

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/joseph-ayodele/paystubs-tracker/internal/common"
	"github.com/joseph-ayodele/paystubs-tracker/internal/entity"
)

const contactSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "minProperties": 1,
  "properties": {
    "address":      {"type": "string", "maxLength": 500},
    "phone_number": {"type": "string", "maxLength": 32},
    "email":        {"type": "string", "maxLength": 254}
  }
}`

var compileContactSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("contact.json", strings.NewReader(contactSchema)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	return compiler.Compile("contact.json")
})

// ApplyContactJSON validates raw against the contact schema, then applies it
// like UpdateContact.
func (s *Service) ApplyContactJSON(ctx context.Context, name string, raw []byte) (*entity.Individual, error) {
	schema, err := compileContactSchema()
	if err != nil {
		return nil, fmt.Errorf("compile contact schema: %w", err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, common.NewAppError(common.CodeValidation, "contact payload is not valid JSON", errors.Join(common.ErrValidation, err))
	}
	if err := schema.Validate(doc); err != nil {
		s.logger.Debug("contact payload rejected", "name", name, "error", err)
		return nil, common.NewAppError(common.CodeValidation, "contact payload does not match schema", fmt.Errorf("%w: %v", common.ErrValidation, err))
	}

	var u entity.ContactUpdate
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&u); err != nil {
		return nil, common.NewAppError(common.CodeValidation, "decode contact payload", errors.Join(common.ErrValidation, err))
	}
	return s.UpdateContact(ctx, name, u)
}
