package client

import (
	"context"
	"errors"
)

// ErrBusy is returned when a mutation is attempted while another request
// is still in flight.
var ErrBusy = errors.New("request already in flight")

type State int

const (
	StateLoading State = iota
	StateIdle
	StateFormOpen
	StateSubmitting
)

// Notifier receives the user-facing failure messages the admin pages used
// to push through blocking alert dialogs.
type Notifier interface {
	Notify(msg string)
}

// Confirmer gates destructive actions; a delete proceeds only on true.
type Confirmer interface {
	Confirm(msg string) bool
}

// Manager drives one admin list page. It owns the fetched rows, the form
// draft, and the in-flight flag that blocks double submission. Rows are a
// disposable cache of server state: every mutation either splices in the
// row the server returned or drops the row the server deleted.
type Manager[T any] struct {
	res     *Resource[T]
	id      func(T) uint
	noun    string
	notify  Notifier
	confirm Confirmer

	state    State
	inFlight bool
	rows     []T
	draft    T
	editing  uint
}

func NewManager[T any](res *Resource[T], id func(T) uint, noun string, n Notifier, cf Confirmer) *Manager[T] {
	return &Manager[T]{
		res:     res,
		id:      id,
		noun:    noun,
		notify:  n,
		confirm: cf,
		state:   StateLoading,
	}
}

func (m *Manager[T]) State() State   { return m.state }
func (m *Manager[T]) InFlight() bool { return m.inFlight }
func (m *Manager[T]) Rows() []T      { return m.rows }
func (m *Manager[T]) Draft() T       { return m.draft }

// Load fetches the full collection. It runs once on page mount; a failure
// surfaces a notification and leaves an empty idle list.
func (m *Manager[T]) Load(ctx context.Context) error {
	rows, err := m.res.List(ctx)
	if err != nil {
		m.notify.Notify("Failed to load " + m.noun + "s. Please try again.")
		m.rows = nil
		m.state = StateIdle
		return err
	}

	m.rows = rows
	m.state = StateIdle
	return nil
}

// OpenCreate opens the form on an empty draft.
func (m *Manager[T]) OpenCreate() {
	if m.state != StateIdle {
		return
	}
	var empty T
	m.draft = empty
	m.editing = 0
	m.state = StateFormOpen
}

// OpenEdit opens the form on a draft copied from an existing row.
func (m *Manager[T]) OpenEdit(row T) {
	if m.state != StateIdle {
		return
	}
	m.draft = row
	m.editing = m.id(row)
	m.state = StateFormOpen
}

func (m *Manager[T]) SetDraft(d T) {
	if m.state == StateFormOpen {
		m.draft = d
	}
}

// CloseForm abandons the draft.
func (m *Manager[T]) CloseForm() {
	if m.state == StateFormOpen {
		m.editing = 0
		m.state = StateIdle
	}
}

// Submit dispatches the draft as a create or a full update depending on
// whether the form was opened on an existing row. On failure the form
// stays open with the draft intact.
func (m *Manager[T]) Submit(ctx context.Context) error {
	if m.state != StateFormOpen {
		return errors.New("no open form to submit")
	}
	if m.inFlight {
		return ErrBusy
	}

	m.inFlight = true
	m.state = StateSubmitting
	defer func() { m.inFlight = false }()

	var saved T
	var err error
	if m.editing != 0 {
		saved, err = m.res.Update(ctx, m.editing, m.draft)
	} else {
		saved, err = m.res.Create(ctx, m.draft)
	}
	if err != nil {
		m.notify.Notify("Failed to save " + m.noun + ". Please try again.")
		m.state = StateFormOpen
		return err
	}

	if m.editing != 0 {
		m.replace(saved)
	} else {
		m.rows = append(m.rows, saved)
	}
	m.editing = 0
	m.state = StateIdle
	return nil
}

// Delete asks for confirmation first and drops the row from local state
// once the server acknowledges. On failure the list is left untouched.
func (m *Manager[T]) Delete(ctx context.Context, id uint) error {
	if m.state != StateIdle || m.inFlight {
		return ErrBusy
	}
	if !m.confirm.Confirm("Are you sure you want to delete this " + m.noun + "?") {
		return nil
	}

	m.inFlight = true
	defer func() { m.inFlight = false }()

	if err := m.res.Delete(ctx, id); err != nil {
		m.notify.Notify("Failed to delete " + m.noun + ". Please try again.")
		return err
	}

	kept := make([]T, 0, len(m.rows))
	for _, row := range m.rows {
		if m.id(row) != id {
			kept = append(kept, row)
		}
	}
	m.rows = kept
	return nil
}

// Toggle flips public visibility through a partial update and splices in
// the row the server returned, never a local guess.
func (m *Manager[T]) Toggle(ctx context.Context, id uint, active bool) error {
	if m.state != StateIdle || m.inFlight {
		return ErrBusy
	}

	m.inFlight = true
	defer func() { m.inFlight = false }()

	updated, err := m.res.SetActive(ctx, id, active)
	if err != nil {
		m.notify.Notify("Failed to update status. Please try again.")
		return err
	}

	m.replace(updated)
	return nil
}

func (m *Manager[T]) replace(row T) {
	id := m.id(row)
	for i := range m.rows {
		if m.id(m.rows[i]) == id {
			m.rows[i] = row
			return
		}
	}
	m.rows = append(m.rows, row)
}
