package model

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	umlerrors "github.com/umltranslator/translator-go/pkg/errors"
)

var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New()
	})
	return validatorInst
}

// namedElementShape is the struct-tag-validated projection of
// NamedElementFields used by Validate. Keeping the tags on a private mirror
// struct (rather than on NamedElementFields itself) keeps the domain type
// free of validation-library annotations.
type namedElementShape struct {
	Name       string `validate:"required"`
	Visibility string `validate:"required,oneof=public private protected package"`
}

func validateNamedElement(field string, fields NamedElementFields) error {
	shape := namedElementShape{Name: fields.Name, Visibility: string(fields.Visibility)}
	if err := validatorInstance().Struct(shape); err != nil {
		return umlerrors.NewValidationError(field, err.Error(), err)
	}
	return nil
}

// Validate checks structural well-formedness: id uniqueness across every
// element and diagram sequence, NamedElement shape, and association end
// arity. Reference closure is checked separately by the Builder's Build
// under the configured strict/non-strict policy, since it depends on the
// Id-Resolver's pending-callback state rather than on the Model alone.
func (m *Model) Validate() error {
	if m == nil {
		return umlerrors.NewValidationError("model", "model is nil", nil)
	}
	if m.id == "" {
		return umlerrors.NewValidationError("model.id", "model id must not be empty", nil)
	}
	if err := validateNamedElement("model.name", m.NamedElementFields); err != nil {
		return err
	}

	seen := make(map[string]struct{})
	record := func(field, id string) error {
		if id == "" {
			return umlerrors.NewValidationError(field, "id must not be empty", nil)
		}
		if _, ok := seen[id]; ok {
			return umlerrors.NewDuplicateIDError(id)
		}
		seen[id] = struct{}{}
		return nil
	}

	for i, c := range m.Elements.Classes {
		if err := record(fmt.Sprintf("elements.classes[%d]", i), c.ID()); err != nil {
			return err
		}
		if err := validateNamedElement(fmt.Sprintf("elements.classes[%d].name", i), c.NamedElementFields); err != nil {
			return err
		}
	}
	for i, itf := range m.Elements.Interfaces {
		if err := record(fmt.Sprintf("elements.interfaces[%d]", i), itf.ID()); err != nil {
			return err
		}
		if err := validateNamedElement(fmt.Sprintf("elements.interfaces[%d].name", i), itf.NamedElementFields); err != nil {
			return err
		}
	}
	for i, dt := range m.Elements.DataTypes {
		if err := record(fmt.Sprintf("elements.data_types[%d]", i), dt.ID()); err != nil {
			return err
		}
		if err := validateNamedElement(fmt.Sprintf("elements.data_types[%d].name", i), dt.NamedElementFields); err != nil {
			return err
		}
	}
	for i, e := range m.Elements.Enumerations {
		if err := record(fmt.Sprintf("elements.enumerations[%d]", i), e.ID()); err != nil {
			return err
		}
		if err := validateNamedElement(fmt.Sprintf("elements.enumerations[%d].name", i), e.NamedElementFields); err != nil {
			return err
		}
	}
	for i, p := range m.Elements.PrimitiveTypes {
		if err := record(fmt.Sprintf("elements.primitive_types[%d]", i), p.ID()); err != nil {
			return err
		}
	}
	for i, a := range m.Elements.Associations {
		if err := record(fmt.Sprintf("elements.associations[%d]", i), a.ID()); err != nil {
			return err
		}
		end1, end2 := a.Ends()
		if end1 == nil || end2 == nil {
			return umlerrors.NewValidationError(fmt.Sprintf("elements.associations[%d]", i), "association must carry exactly two ends", nil)
		}
	}
	for i, g := range m.Elements.Generalizations {
		if err := record(fmt.Sprintf("elements.generalizations[%d]", i), g.ID()); err != nil {
			return err
		}
	}
	for i, d := range m.Elements.Dependencies {
		if err := record(fmt.Sprintf("elements.dependencies[%d]", i), d.ID()); err != nil {
			return err
		}
	}
	for i, r := range m.Elements.Realizations {
		if err := record(fmt.Sprintf("elements.realizations[%d]", i), r.ID()); err != nil {
			return err
		}
	}
	for i, it := range m.Elements.Interactions {
		if err := record(fmt.Sprintf("elements.interactions[%d]", i), it.ID()); err != nil {
			return err
		}
		if err := validateNamedElement(fmt.Sprintf("elements.interactions[%d].name", i), it.NamedElementFields); err != nil {
			return err
		}
	}
	for i, p := range m.Elements.Packages {
		if err := record(fmt.Sprintf("elements.packages[%d]", i), p.ID()); err != nil {
			return err
		}
		if err := validateNamedElement(fmt.Sprintf("elements.packages[%d].name", i), p.NamedElementFields); err != nil {
			return err
		}
	}

	for i, cd := range m.Diagrams.ClassDiagrams {
		if err := record(fmt.Sprintf("diagrams.class[%d]", i), cd.ID()); err != nil {
			return err
		}
		if err := validateNamedElement(fmt.Sprintf("diagrams.class[%d].name", i), cd.NamedElementFields); err != nil {
			return err
		}
	}
	for i, sd := range m.Diagrams.SequenceDiagrams {
		if err := record(fmt.Sprintf("diagrams.sequence[%d]", i), sd.ID()); err != nil {
			return err
		}
		if err := validateNamedElement(fmt.Sprintf("diagrams.sequence[%d].name", i), sd.NamedElementFields); err != nil {
			return err
		}
	}

	return nil
}
