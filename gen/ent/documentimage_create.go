// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/candlekeep/candlekeep/gen/ent/document"
	"github.com/candlekeep/candlekeep/gen/ent/documentimage"
)

// DocumentImageCreate is the builder for creating a DocumentImage entity.
type DocumentImageCreate struct {
	config
	mutation *DocumentImageMutation
	hooks    []Hook
}

// SetDocumentID sets the "document_id" field.
func (_c *DocumentImageCreate) SetDocumentID(v int) *DocumentImageCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetPageNumber sets the "page_number" field.
func (_c *DocumentImageCreate) SetPageNumber(v int) *DocumentImageCreate {
	_c.mutation.SetPageNumber(v)
	return _c
}

// SetPrintedPageNumber sets the "printed_page_number" field.
func (_c *DocumentImageCreate) SetPrintedPageNumber(v int) *DocumentImageCreate {
	_c.mutation.SetPrintedPageNumber(v)
	return _c
}

// SetNillablePrintedPageNumber sets the "printed_page_number" field if the given value is not nil.
func (_c *DocumentImageCreate) SetNillablePrintedPageNumber(v *int) *DocumentImageCreate {
	if v != nil {
		_c.SetPrintedPageNumber(*v)
	}
	return _c
}

// SetXref sets the "xref" field.
func (_c *DocumentImageCreate) SetXref(v int) *DocumentImageCreate {
	_c.mutation.SetXref(v)
	return _c
}

// SetFilePath sets the "file_path" field.
func (_c *DocumentImageCreate) SetFilePath(v string) *DocumentImageCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetWidth sets the "width" field.
func (_c *DocumentImageCreate) SetWidth(v int) *DocumentImageCreate {
	_c.mutation.SetWidth(v)
	return _c
}

// SetHeight sets the "height" field.
func (_c *DocumentImageCreate) SetHeight(v int) *DocumentImageCreate {
	_c.mutation.SetHeight(v)
	return _c
}

// SetFormat sets the "format" field.
func (_c *DocumentImageCreate) SetFormat(v string) *DocumentImageCreate {
	_c.mutation.SetFormat(v)
	return _c
}

// SetColorspace sets the "colorspace" field.
func (_c *DocumentImageCreate) SetColorspace(v string) *DocumentImageCreate {
	_c.mutation.SetColorspace(v)
	return _c
}

// SetNillableColorspace sets the "colorspace" field if the given value is not nil.
func (_c *DocumentImageCreate) SetNillableColorspace(v *string) *DocumentImageCreate {
	if v != nil {
		_c.SetColorspace(*v)
	}
	return _c
}

// SetHasTransparency sets the "has_transparency" field.
func (_c *DocumentImageCreate) SetHasTransparency(v bool) *DocumentImageCreate {
	_c.mutation.SetHasTransparency(v)
	return _c
}

// SetNillableHasTransparency sets the "has_transparency" field if the given value is not nil.
func (_c *DocumentImageCreate) SetNillableHasTransparency(v *bool) *DocumentImageCreate {
	if v != nil {
		_c.SetHasTransparency(*v)
	}
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *DocumentImageCreate) SetFileSize(v int) *DocumentImageCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_c *DocumentImageCreate) SetNillableFileSize(v *int) *DocumentImageCreate {
	if v != nil {
		_c.SetFileSize(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocumentImageCreate) SetCreatedAt(v time.Time) *DocumentImageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DocumentImageCreate) SetNillableCreatedAt(v *time.Time) *DocumentImageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *DocumentImageCreate) SetDocument(v *Document) *DocumentImageCreate {
	return _c.SetDocumentID(v.ID)
}

// Mutation returns the DocumentImageMutation object of the builder.
func (_c *DocumentImageCreate) Mutation() *DocumentImageMutation {
	return _c.mutation
}

// Save creates the DocumentImage in the database.
func (_c *DocumentImageCreate) Save(ctx context.Context) (*DocumentImage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentImageCreate) SaveX(ctx context.Context) *DocumentImage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentImageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentImageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentImageCreate) defaults() {
	if _, ok := _c.mutation.HasTransparency(); !ok {
		v := documentimage.DefaultHasTransparency
		_c.mutation.SetHasTransparency(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := documentimage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentImageCreate) check() error {
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "DocumentImage.document_id"`)}
	}
	if _, ok := _c.mutation.PageNumber(); !ok {
		return &ValidationError{Name: "page_number", err: errors.New(`ent: missing required field "DocumentImage.page_number"`)}
	}
	if v, ok := _c.mutation.PageNumber(); ok {
		if err := documentimage.PageNumberValidator(v); err != nil {
			return &ValidationError{Name: "page_number", err: fmt.Errorf(`ent: validator failed for field "DocumentImage.page_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Xref(); !ok {
		return &ValidationError{Name: "xref", err: errors.New(`ent: missing required field "DocumentImage.xref"`)}
	}
	if _, ok := _c.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`ent: missing required field "DocumentImage.file_path"`)}
	}
	if v, ok := _c.mutation.FilePath(); ok {
		if err := documentimage.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "DocumentImage.file_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Width(); !ok {
		return &ValidationError{Name: "width", err: errors.New(`ent: missing required field "DocumentImage.width"`)}
	}
	if v, ok := _c.mutation.Width(); ok {
		if err := documentimage.WidthValidator(v); err != nil {
			return &ValidationError{Name: "width", err: fmt.Errorf(`ent: validator failed for field "DocumentImage.width": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Height(); !ok {
		return &ValidationError{Name: "height", err: errors.New(`ent: missing required field "DocumentImage.height"`)}
	}
	if v, ok := _c.mutation.Height(); ok {
		if err := documentimage.HeightValidator(v); err != nil {
			return &ValidationError{Name: "height", err: fmt.Errorf(`ent: validator failed for field "DocumentImage.height": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Format(); !ok {
		return &ValidationError{Name: "format", err: errors.New(`ent: missing required field "DocumentImage.format"`)}
	}
	if v, ok := _c.mutation.Format(); ok {
		if err := documentimage.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "DocumentImage.format": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Colorspace(); ok {
		if err := documentimage.ColorspaceValidator(v); err != nil {
			return &ValidationError{Name: "colorspace", err: fmt.Errorf(`ent: validator failed for field "DocumentImage.colorspace": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HasTransparency(); !ok {
		return &ValidationError{Name: "has_transparency", err: errors.New(`ent: missing required field "DocumentImage.has_transparency"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DocumentImage.created_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "DocumentImage.document"`)}
	}
	return nil
}

func (_c *DocumentImageCreate) sqlSave(ctx context.Context) (*DocumentImage, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DocumentImageCreate) createSpec() (*DocumentImage, *sqlgraph.CreateSpec) {
	var (
		_node = &DocumentImage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(documentimage.Table, sqlgraph.NewFieldSpec(documentimage.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PageNumber(); ok {
		_spec.SetField(documentimage.FieldPageNumber, field.TypeInt, value)
		_node.PageNumber = value
	}
	if value, ok := _c.mutation.PrintedPageNumber(); ok {
		_spec.SetField(documentimage.FieldPrintedPageNumber, field.TypeInt, value)
		_node.PrintedPageNumber = &value
	}
	if value, ok := _c.mutation.Xref(); ok {
		_spec.SetField(documentimage.FieldXref, field.TypeInt, value)
		_node.Xref = value
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(documentimage.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.Width(); ok {
		_spec.SetField(documentimage.FieldWidth, field.TypeInt, value)
		_node.Width = value
	}
	if value, ok := _c.mutation.Height(); ok {
		_spec.SetField(documentimage.FieldHeight, field.TypeInt, value)
		_node.Height = value
	}
	if value, ok := _c.mutation.Format(); ok {
		_spec.SetField(documentimage.FieldFormat, field.TypeString, value)
		_node.Format = value
	}
	if value, ok := _c.mutation.Colorspace(); ok {
		_spec.SetField(documentimage.FieldColorspace, field.TypeString, value)
		_node.Colorspace = value
	}
	if value, ok := _c.mutation.HasTransparency(); ok {
		_spec.SetField(documentimage.FieldHasTransparency, field.TypeBool, value)
		_node.HasTransparency = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(documentimage.FieldFileSize, field.TypeInt, value)
		_node.FileSize = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(documentimage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   documentimage.DocumentTable,
			Columns: []string{documentimage.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DocumentImageCreateBulk is the builder for creating many DocumentImage entities in bulk.
type DocumentImageCreateBulk struct {
	config
	err      error
	builders []*DocumentImageCreate
}

// Save creates the DocumentImage entities in the database.
func (_c *DocumentImageCreateBulk) Save(ctx context.Context) ([]*DocumentImage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DocumentImage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentImageMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DocumentImageCreateBulk) SaveX(ctx context.Context) []*DocumentImage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentImageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentImageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
