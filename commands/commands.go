package commands

import (
	"context"
	stderrors "errors"
	"fmt"

	"backoffice/repository"
)

// Command is one step of a unit of work.
type Command interface {
	Name() string
	Execute(ctx context.Context) error
}

// DeleteCommand deletes one row. Deleting a row that is already gone
// succeeds, so a failed batch can simply be run again.
type DeleteCommand[T any] struct {
	table repository.Table[T]
	id    string
}

func NewDeleteCommand[T any](table repository.Table[T], id string) *DeleteCommand[T] {
	return &DeleteCommand[T]{table: table, id: id}
}

func (c *DeleteCommand[T]) Name() string {
	return "delete " + c.table.Name() + "/" + c.id
}

func (c *DeleteCommand[T]) Execute(ctx context.Context) error {
	err := c.table.Delete(ctx, c.id)
	if stderrors.Is(err, repository.ErrNotFound) {
		return nil
	}
	return err
}

// Batch runs commands in order and stops at the first failure. It is not
// atomic by itself; run it inside Store.RunInTransaction to make it so.
type Batch struct {
	commands []Command
}

func NewBatch() *Batch {
	return &Batch{}
}

func (b *Batch) Add(cmds ...Command) *Batch {
	b.commands = append(b.commands, cmds...)
	return b
}

func (b *Batch) Len() int {
	return len(b.commands)
}

func (b *Batch) Execute(ctx context.Context) error {
	for i, cmd := range b.commands {
		if err := cmd.Execute(ctx); err != nil {
			return &PartialFailure{Completed: i, Total: len(b.commands), Failed: cmd.Name(), Err: err}
		}
	}
	return nil
}

// PartialFailure reports how far a batch got before a step failed.
type PartialFailure struct {
	Completed int
	Total     int
	Failed    string
	Err       error
}

func (e *PartialFailure) Error() string {
	return fmt.Sprintf("batch stopped after %d of %d steps at %s: %v", e.Completed, e.Total, e.Failed, e.Err)
}

func (e *PartialFailure) Unwrap() error {
	return e.Err
}
