package builder

import "github.com/umltranslator/translator-go/internal/model"

func (b *Builder) lifeline(refID string, assign func(*model.Lifeline)) {
	b.resolveOrDefer(refID, func(e model.Element) {
		if l, ok := e.(*model.Lifeline); ok {
			assign(l)
		}
	})
}

func (b *Builder) occurrence(refID string, assign func(*model.OccurrenceSpecification)) {
	b.resolveOrDefer(refID, func(e model.Element) {
		if o, ok := e.(*model.OccurrenceSpecification); ok {
			assign(o)
		}
	})
}

// attachFragment defers appending fragment to whichever parent kind owns the
// ordered Fragments sequence it belongs to: an Interaction or an Operand.
func (b *Builder) attachFragment(parentID string, fragment model.Fragment) {
	b.resolveOrDefer(parentID, func(e model.Element) {
		switch p := e.(type) {
		case *model.Interaction:
			p.Fragments = append(p.Fragments, fragment)
		case *model.Operand:
			p.Fragments = append(p.Fragments, fragment)
		}
	})
}

// ConstructInteraction registers an Interaction; its lifelines, messages,
// and fragment sequence are populated by later construct calls referencing
// this id.
func (b *Builder) ConstructInteraction(id, name string, visibility model.Visibility) *Builder {
	if b.err != nil {
		return b
	}
	if visibility == "" {
		visibility = model.DefaultVisibility
	}
	it := &model.Interaction{NamedElementFields: model.NamedElementFields{Name: name, Visibility: visibility}}
	it.SetID(id)
	if !b.register(it, "") {
		return b
	}
	b.model.Elements.Interactions = append(b.model.Elements.Interactions, it)
	return b
}

// ConstructLifeline registers a Lifeline and queues its attachment to the
// owning Interaction's ordered Lifelines sequence.
func (b *Builder) ConstructLifeline(id, interactionID, name, representsID string) *Builder {
	if b.err != nil {
		return b
	}
	l := &model.Lifeline{NamedElementFields: model.NamedElementFields{Name: name, Visibility: model.DefaultVisibility}}
	l.SetID(id)
	b.classifier(representsID, func(c model.Classifier) { l.Represents = c })
	if !b.register(l, "") {
		return b
	}
	b.resolveOrDefer(interactionID, func(e model.Element) {
		if it, ok := e.(*model.Interaction); ok {
			it.Lifelines = append(it.Lifelines, l)
		}
	})
	return b
}

// ConstructOccurrenceSpecification registers an OccurrenceSpecification and
// attaches it to the owning Interaction or Operand's Fragments sequence.
func (b *Builder) ConstructOccurrenceSpecification(id, parentID, coveredLifelineID string) *Builder {
	if b.err != nil {
		return b
	}
	o := &model.OccurrenceSpecification{}
	o.SetID(id)
	b.lifeline(coveredLifelineID, func(l *model.Lifeline) { o.Covered = l })
	if !b.register(o, "") {
		return b
	}
	b.attachFragment(parentID, o)
	return b
}

// MessageParams describes a Message construction call.
type MessageParams struct {
	ID             string
	InteractionID  string
	Name           string
	SendEventID    string
	ReceiveEventID string
	SignatureID    string
	Arguments      []string
	Sort           model.MessageSort
	Kind           model.MessageKind
}

// ConstructMessage registers a Message and appends it to the owning
// Interaction's ordered Messages sequence.
func (b *Builder) ConstructMessage(p MessageParams) *Builder {
	if b.err != nil {
		return b
	}
	m := &model.Message{
		Name:      p.Name,
		Arguments: append([]string(nil), p.Arguments...),
		Sort:      p.Sort,
		Kind:      p.Kind,
	}
	m.SetID(p.ID)
	b.occurrence(p.SendEventID, func(o *model.OccurrenceSpecification) { m.SendEvent = o })
	b.occurrence(p.ReceiveEventID, func(o *model.OccurrenceSpecification) { m.ReceiveEvent = o })
	b.resolveOrDefer(p.SignatureID, func(e model.Element) {
		if op, ok := e.(*model.Operation); ok {
			m.Signature = op
		}
	})
	if !b.register(m, "") {
		return b
	}
	b.resolveOrDefer(p.InteractionID, func(e model.Element) {
		if it, ok := e.(*model.Interaction); ok {
			it.Messages = append(it.Messages, m)
		}
	})
	return b
}

// ConstructOperand registers an Operand and attaches it to the owning
// CombinedFragment's ordered Operands sequence.
func (b *Builder) ConstructOperand(id, combinedFragmentID, guard string) *Builder {
	if b.err != nil {
		return b
	}
	op := &model.Operand{Guard: guard}
	op.SetID(id)
	if !b.register(op, "") {
		return b
	}
	b.resolveOrDefer(combinedFragmentID, func(e model.Element) {
		if cf, ok := e.(*model.CombinedFragment); ok {
			cf.Operands = append(cf.Operands, op)
		}
	})
	return b
}

// ConstructCombinedFragment registers a CombinedFragment and attaches it to
// its owning Interaction or Operand's Fragments sequence. coveredLifelineIDs
// are resolved or deferred individually, in the given order.
func (b *Builder) ConstructCombinedFragment(id, parentID string, operator model.CombinedFragmentOperator, coveredLifelineIDs []string) *Builder {
	if b.err != nil {
		return b
	}
	cf := &model.CombinedFragment{Operator: operator}
	cf.SetID(id)
	for _, lifelineID := range coveredLifelineIDs {
		b.lifeline(lifelineID, func(l *model.Lifeline) { cf.Covered = append(cf.Covered, l) })
	}
	if !b.register(cf, "") {
		return b
	}
	b.attachFragment(parentID, cf)
	return b
}

// ConstructInteractionUse registers an InteractionUse referencing another
// Interaction, and attaches it to its owning Interaction or Operand's
// Fragments sequence.
func (b *Builder) ConstructInteractionUse(id, parentID, referencedInteractionID string, coveredLifelineIDs []string) *Builder {
	if b.err != nil {
		return b
	}
	iu := &model.InteractionUse{}
	iu.SetID(id)
	b.resolveOrDefer(referencedInteractionID, func(e model.Element) {
		if it, ok := e.(*model.Interaction); ok {
			iu.Interaction = it
		}
	})
	for _, lifelineID := range coveredLifelineIDs {
		b.lifeline(lifelineID, func(l *model.Lifeline) { iu.Covered = append(iu.Covered, l) })
	}
	if !b.register(iu, "") {
		return b
	}
	b.attachFragment(parentID, iu)
	return b
}
