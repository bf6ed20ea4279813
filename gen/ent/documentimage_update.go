// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/candlekeep/candlekeep/gen/ent/document"
	"github.com/candlekeep/candlekeep/gen/ent/documentimage"
	"github.com/candlekeep/candlekeep/gen/ent/predicate"
)

// DocumentImageUpdate is the builder for updating DocumentImage entities.
type DocumentImageUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentImageMutation
}

// Where appends a list predicates to the DocumentImageUpdate builder.
func (_u *DocumentImageUpdate) Where(ps ...predicate.DocumentImage) *DocumentImageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *DocumentImageUpdate) SetDocumentID(v int) *DocumentImageUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *DocumentImageUpdate) SetNillableDocumentID(v *int) *DocumentImageUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetPageNumber sets the "page_number" field.
func (_u *DocumentImageUpdate) SetPageNumber(v int) *DocumentImageUpdate {
	_u.mutation.ResetPageNumber()
	_u.mutation.SetPageNumber(v)
	return _u
}

// SetNillablePageNumber sets the "page_number" field if the given value is not nil.
func (_u *DocumentImageUpdate) SetNillablePageNumber(v *int) *DocumentImageUpdate {
	if v != nil {
		_u.SetPageNumber(*v)
	}
	return _u
}

// AddPageNumber adds value to the "page_number" field.
func (_u *DocumentImageUpdate) AddPageNumber(v int) *DocumentImageUpdate {
	_u.mutation.AddPageNumber(v)
	return _u
}

// SetPrintedPageNumber sets the "printed_page_number" field.
func (_u *DocumentImageUpdate) SetPrintedPageNumber(v int) *DocumentImageUpdate {
	_u.mutation.ResetPrintedPageNumber()
	_u.mutation.SetPrintedPageNumber(v)
	return _u
}

// SetNillablePrintedPageNumber sets the "printed_page_number" field if the given value is not nil.
func (_u *DocumentImageUpdate) SetNillablePrintedPageNumber(v *int) *DocumentImageUpdate {
	if v != nil {
		_u.SetPrintedPageNumber(*v)
	}
	return _u
}

// AddPrintedPageNumber adds value to the "printed_page_number" field.
func (_u *DocumentImageUpdate) AddPrintedPageNumber(v int) *DocumentImageUpdate {
	_u.mutation.AddPrintedPageNumber(v)
	return _u
}

// ClearPrintedPageNumber clears the value of the "printed_page_number" field.
func (_u *DocumentImageUpdate) ClearPrintedPageNumber() *DocumentImageUpdate {
	_u.mutation.ClearPrintedPageNumber()
	return _u
}

// SetXref sets the "xref" field.
func (_u *DocumentImageUpdate) SetXref(v int) *DocumentImageUpdate {
	_u.mutation.ResetXref()
	_u.mutation.SetXref(v)
	return _u
}

// SetNillableXref sets the "xref" field if the given value is not nil.
func (_u *DocumentImageUpdate) SetNillableXref(v *int) *DocumentImageUpdate {
	if v != nil {
		_u.SetXref(*v)
	}
	return _u
}

// AddXref adds value to the "xref" field.
func (_u *DocumentImageUpdate) AddXref(v int) *DocumentImageUpdate {
	_u.mutation.AddXref(v)
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *DocumentImageUpdate) SetFilePath(v string) *DocumentImageUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *DocumentImageUpdate) SetNillableFilePath(v *string) *DocumentImageUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetWidth sets the "width" field.
func (_u *DocumentImageUpdate) SetWidth(v int) *DocumentImageUpdate {
	_u.mutation.ResetWidth()
	_u.mutation.SetWidth(v)
	return _u
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_u *DocumentImageUpdate) SetNillableWidth(v *int) *DocumentImageUpdate {
	if v != nil {
		_u.SetWidth(*v)
	}
	return _u
}

// AddWidth adds value to the "width" field.
func (_u *DocumentImageUpdate) AddWidth(v int) *DocumentImageUpdate {
	_u.mutation.AddWidth(v)
	return _u
}

// SetHeight sets the "height" field.
func (_u *DocumentImageUpdate) SetHeight(v int) *DocumentImageUpdate {
	_u.mutation.ResetHeight()
	_u.mutation.SetHeight(v)
	return _u
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_u *DocumentImageUpdate) SetNillableHeight(v *int) *DocumentImageUpdate {
	if v != nil {
		_u.SetHeight(*v)
	}
	return _u
}

// AddHeight adds value to the "height" field.
func (_u *DocumentImageUpdate) AddHeight(v int) *DocumentImageUpdate {
	_u.mutation.AddHeight(v)
	return _u
}

// SetFormat sets the "format" field.
func (_u *DocumentImageUpdate) SetFormat(v string) *DocumentImageUpdate {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *DocumentImageUpdate) SetNillableFormat(v *string) *DocumentImageUpdate {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetColorspace sets the "colorspace" field.
func (_u *DocumentImageUpdate) SetColorspace(v string) *DocumentImageUpdate {
	_u.mutation.SetColorspace(v)
	return _u
}

// SetNillableColorspace sets the "colorspace" field if the given value is not nil.
func (_u *DocumentImageUpdate) SetNillableColorspace(v *string) *DocumentImageUpdate {
	if v != nil {
		_u.SetColorspace(*v)
	}
	return _u
}

// ClearColorspace clears the value of the "colorspace" field.
func (_u *DocumentImageUpdate) ClearColorspace() *DocumentImageUpdate {
	_u.mutation.ClearColorspace()
	return _u
}

// SetHasTransparency sets the "has_transparency" field.
func (_u *DocumentImageUpdate) SetHasTransparency(v bool) *DocumentImageUpdate {
	_u.mutation.SetHasTransparency(v)
	return _u
}

// SetNillableHasTransparency sets the "has_transparency" field if the given value is not nil.
func (_u *DocumentImageUpdate) SetNillableHasTransparency(v *bool) *DocumentImageUpdate {
	if v != nil {
		_u.SetHasTransparency(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *DocumentImageUpdate) SetFileSize(v int) *DocumentImageUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *DocumentImageUpdate) SetNillableFileSize(v *int) *DocumentImageUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *DocumentImageUpdate) AddFileSize(v int) *DocumentImageUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// ClearFileSize clears the value of the "file_size" field.
func (_u *DocumentImageUpdate) ClearFileSize() *DocumentImageUpdate {
	_u.mutation.ClearFileSize()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *DocumentImageUpdate) SetDocument(v *Document) *DocumentImageUpdate {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the DocumentImageMutation object of the builder.
func (_u *DocumentImageUpdate) Mutation() *DocumentImageMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *DocumentImageUpdate) ClearDocument() *DocumentImageUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentImageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentImageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentImageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentImageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentImageUpdate) check() error {
	if v, ok := _u.mutation.PageNumber(); ok {
		if err := documentimage.PageNumberValidator(v); err != nil {
			return &ValidationError{Name: "page_number", err: fmt.Errorf(`ent: validator failed for field "DocumentImage.page_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := documentimage.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "DocumentImage.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Width(); ok {
		if err := documentimage.WidthValidator(v); err != nil {
			return &ValidationError{Name: "width", err: fmt.Errorf(`ent: validator failed for field "DocumentImage.width": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Height(); ok {
		if err := documentimage.HeightValidator(v); err != nil {
			return &ValidationError{Name: "height", err: fmt.Errorf(`ent: validator failed for field "DocumentImage.height": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := documentimage.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "DocumentImage.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Colorspace(); ok {
		if err := documentimage.ColorspaceValidator(v); err != nil {
			return &ValidationError{Name: "colorspace", err: fmt.Errorf(`ent: validator failed for field "DocumentImage.colorspace": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocumentImage.document"`)
	}
	return nil
}

func (_u *DocumentImageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentimage.Table, documentimage.Columns, sqlgraph.NewFieldSpec(documentimage.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PageNumber(); ok {
		_spec.SetField(documentimage.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageNumber(); ok {
		_spec.AddField(documentimage.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PrintedPageNumber(); ok {
		_spec.SetField(documentimage.FieldPrintedPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrintedPageNumber(); ok {
		_spec.AddField(documentimage.FieldPrintedPageNumber, field.TypeInt, value)
	}
	if _u.mutation.PrintedPageNumberCleared() {
		_spec.ClearField(documentimage.FieldPrintedPageNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.Xref(); ok {
		_spec.SetField(documentimage.FieldXref, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXref(); ok {
		_spec.AddField(documentimage.FieldXref, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(documentimage.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Width(); ok {
		_spec.SetField(documentimage.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWidth(); ok {
		_spec.AddField(documentimage.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(documentimage.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeight(); ok {
		_spec.AddField(documentimage.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(documentimage.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.Colorspace(); ok {
		_spec.SetField(documentimage.FieldColorspace, field.TypeString, value)
	}
	if _u.mutation.ColorspaceCleared() {
		_spec.ClearField(documentimage.FieldColorspace, field.TypeString)
	}
	if value, ok := _u.mutation.HasTransparency(); ok {
		_spec.SetField(documentimage.FieldHasTransparency, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(documentimage.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(documentimage.FieldFileSize, field.TypeInt, value)
	}
	if _u.mutation.FileSizeCleared() {
		_spec.ClearField(documentimage.FieldFileSize, field.TypeInt)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentimage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentImageUpdateOne is the builder for updating a single DocumentImage entity.
type DocumentImageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentImageMutation
}

// SetDocumentID sets the "document_id" field.
func (_u *DocumentImageUpdateOne) SetDocumentID(v int) *DocumentImageUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *DocumentImageUpdateOne) SetNillableDocumentID(v *int) *DocumentImageUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetPageNumber sets the "page_number" field.
func (_u *DocumentImageUpdateOne) SetPageNumber(v int) *DocumentImageUpdateOne {
	_u.mutation.ResetPageNumber()
	_u.mutation.SetPageNumber(v)
	return _u
}

// SetNillablePageNumber sets the "page_number" field if the given value is not nil.
func (_u *DocumentImageUpdateOne) SetNillablePageNumber(v *int) *DocumentImageUpdateOne {
	if v != nil {
		_u.SetPageNumber(*v)
	}
	return _u
}

// AddPageNumber adds value to the "page_number" field.
func (_u *DocumentImageUpdateOne) AddPageNumber(v int) *DocumentImageUpdateOne {
	_u.mutation.AddPageNumber(v)
	return _u
}

// SetPrintedPageNumber sets the "printed_page_number" field.
func (_u *DocumentImageUpdateOne) SetPrintedPageNumber(v int) *DocumentImageUpdateOne {
	_u.mutation.ResetPrintedPageNumber()
	_u.mutation.SetPrintedPageNumber(v)
	return _u
}

// SetNillablePrintedPageNumber sets the "printed_page_number" field if the given value is not nil.
func (_u *DocumentImageUpdateOne) SetNillablePrintedPageNumber(v *int) *DocumentImageUpdateOne {
	if v != nil {
		_u.SetPrintedPageNumber(*v)
	}
	return _u
}

// AddPrintedPageNumber adds value to the "printed_page_number" field.
func (_u *DocumentImageUpdateOne) AddPrintedPageNumber(v int) *DocumentImageUpdateOne {
	_u.mutation.AddPrintedPageNumber(v)
	return _u
}

// ClearPrintedPageNumber clears the value of the "printed_page_number" field.
func (_u *DocumentImageUpdateOne) ClearPrintedPageNumber() *DocumentImageUpdateOne {
	_u.mutation.ClearPrintedPageNumber()
	return _u
}

// SetXref sets the "xref" field.
func (_u *DocumentImageUpdateOne) SetXref(v int) *DocumentImageUpdateOne {
	_u.mutation.ResetXref()
	_u.mutation.SetXref(v)
	return _u
}

// SetNillableXref sets the "xref" field if the given value is not nil.
func (_u *DocumentImageUpdateOne) SetNillableXref(v *int) *DocumentImageUpdateOne {
	if v != nil {
		_u.SetXref(*v)
	}
	return _u
}

// AddXref adds value to the "xref" field.
func (_u *DocumentImageUpdateOne) AddXref(v int) *DocumentImageUpdateOne {
	_u.mutation.AddXref(v)
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *DocumentImageUpdateOne) SetFilePath(v string) *DocumentImageUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *DocumentImageUpdateOne) SetNillableFilePath(v *string) *DocumentImageUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetWidth sets the "width" field.
func (_u *DocumentImageUpdateOne) SetWidth(v int) *DocumentImageUpdateOne {
	_u.mutation.ResetWidth()
	_u.mutation.SetWidth(v)
	return _u
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_u *DocumentImageUpdateOne) SetNillableWidth(v *int) *DocumentImageUpdateOne {
	if v != nil {
		_u.SetWidth(*v)
	}
	return _u
}

// AddWidth adds value to the "width" field.
func (_u *DocumentImageUpdateOne) AddWidth(v int) *DocumentImageUpdateOne {
	_u.mutation.AddWidth(v)
	return _u
}

// SetHeight sets the "height" field.
func (_u *DocumentImageUpdateOne) SetHeight(v int) *DocumentImageUpdateOne {
	_u.mutation.ResetHeight()
	_u.mutation.SetHeight(v)
	return _u
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_u *DocumentImageUpdateOne) SetNillableHeight(v *int) *DocumentImageUpdateOne {
	if v != nil {
		_u.SetHeight(*v)
	}
	return _u
}

// AddHeight adds value to the "height" field.
func (_u *DocumentImageUpdateOne) AddHeight(v int) *DocumentImageUpdateOne {
	_u.mutation.AddHeight(v)
	return _u
}

// SetFormat sets the "format" field.
func (_u *DocumentImageUpdateOne) SetFormat(v string) *DocumentImageUpdateOne {
	_u.mutation.SetFormat(v)
	return _u
}

// SetNillableFormat sets the "format" field if the given value is not nil.
func (_u *DocumentImageUpdateOne) SetNillableFormat(v *string) *DocumentImageUpdateOne {
	if v != nil {
		_u.SetFormat(*v)
	}
	return _u
}

// SetColorspace sets the "colorspace" field.
func (_u *DocumentImageUpdateOne) SetColorspace(v string) *DocumentImageUpdateOne {
	_u.mutation.SetColorspace(v)
	return _u
}

// SetNillableColorspace sets the "colorspace" field if the given value is not nil.
func (_u *DocumentImageUpdateOne) SetNillableColorspace(v *string) *DocumentImageUpdateOne {
	if v != nil {
		_u.SetColorspace(*v)
	}
	return _u
}

// ClearColorspace clears the value of the "colorspace" field.
func (_u *DocumentImageUpdateOne) ClearColorspace() *DocumentImageUpdateOne {
	_u.mutation.ClearColorspace()
	return _u
}

// SetHasTransparency sets the "has_transparency" field.
func (_u *DocumentImageUpdateOne) SetHasTransparency(v bool) *DocumentImageUpdateOne {
	_u.mutation.SetHasTransparency(v)
	return _u
}

// SetNillableHasTransparency sets the "has_transparency" field if the given value is not nil.
func (_u *DocumentImageUpdateOne) SetNillableHasTransparency(v *bool) *DocumentImageUpdateOne {
	if v != nil {
		_u.SetHasTransparency(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *DocumentImageUpdateOne) SetFileSize(v int) *DocumentImageUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *DocumentImageUpdateOne) SetNillableFileSize(v *int) *DocumentImageUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *DocumentImageUpdateOne) AddFileSize(v int) *DocumentImageUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// ClearFileSize clears the value of the "file_size" field.
func (_u *DocumentImageUpdateOne) ClearFileSize() *DocumentImageUpdateOne {
	_u.mutation.ClearFileSize()
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *DocumentImageUpdateOne) SetDocument(v *Document) *DocumentImageUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// Mutation returns the DocumentImageMutation object of the builder.
func (_u *DocumentImageUpdateOne) Mutation() *DocumentImageMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *DocumentImageUpdateOne) ClearDocument() *DocumentImageUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// Where appends a list predicates to the DocumentImageUpdate builder.
func (_u *DocumentImageUpdateOne) Where(ps ...predicate.DocumentImage) *DocumentImageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentImageUpdateOne) Select(field string, fields ...string) *DocumentImageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DocumentImage entity.
func (_u *DocumentImageUpdateOne) Save(ctx context.Context) (*DocumentImage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentImageUpdateOne) SaveX(ctx context.Context) *DocumentImage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentImageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentImageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentImageUpdateOne) check() error {
	if v, ok := _u.mutation.PageNumber(); ok {
		if err := documentimage.PageNumberValidator(v); err != nil {
			return &ValidationError{Name: "page_number", err: fmt.Errorf(`ent: validator failed for field "DocumentImage.page_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := documentimage.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "DocumentImage.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Width(); ok {
		if err := documentimage.WidthValidator(v); err != nil {
			return &ValidationError{Name: "width", err: fmt.Errorf(`ent: validator failed for field "DocumentImage.width": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Height(); ok {
		if err := documentimage.HeightValidator(v); err != nil {
			return &ValidationError{Name: "height", err: fmt.Errorf(`ent: validator failed for field "DocumentImage.height": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Format(); ok {
		if err := documentimage.FormatValidator(v); err != nil {
			return &ValidationError{Name: "format", err: fmt.Errorf(`ent: validator failed for field "DocumentImage.format": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Colorspace(); ok {
		if err := documentimage.ColorspaceValidator(v); err != nil {
			return &ValidationError{Name: "colorspace", err: fmt.Errorf(`ent: validator failed for field "DocumentImage.colorspace": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DocumentImage.document"`)
	}
	return nil
}

func (_u *DocumentImageUpdateOne) sqlSave(ctx context.Context) (_node *DocumentImage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(documentimage.Table, documentimage.Columns, sqlgraph.NewFieldSpec(documentimage.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DocumentImage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, documentimage.FieldID)
		for _, f := range fields {
			if !documentimage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != documentimage.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PageNumber(); ok {
		_spec.SetField(documentimage.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageNumber(); ok {
		_spec.AddField(documentimage.FieldPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PrintedPageNumber(); ok {
		_spec.SetField(documentimage.FieldPrintedPageNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrintedPageNumber(); ok {
		_spec.AddField(documentimage.FieldPrintedPageNumber, field.TypeInt, value)
	}
	if _u.mutation.PrintedPageNumberCleared() {
		_spec.ClearField(documentimage.FieldPrintedPageNumber, field.TypeInt)
	}
	if value, ok := _u.mutation.Xref(); ok {
		_spec.SetField(documentimage.FieldXref, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXref(); ok {
		_spec.AddField(documentimage.FieldXref, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(documentimage.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Width(); ok {
		_spec.SetField(documentimage.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWidth(); ok {
		_spec.AddField(documentimage.FieldWidth, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(documentimage.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHeight(); ok {
		_spec.AddField(documentimage.FieldHeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Format(); ok {
		_spec.SetField(documentimage.FieldFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.Colorspace(); ok {
		_spec.SetField(documentimage.FieldColorspace, field.TypeString, value)
	}
	if _u.mutation.ColorspaceCleared() {
		_spec.ClearField(documentimage.FieldColorspace, field.TypeString)
	}
	if value, ok := _u.mutation.HasTransparency(); ok {
		_spec.SetField(documentimage.FieldHasTransparency, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(documentimage.FieldFileSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(documentimage.FieldFileSize, field.TypeInt, value)
	}
	if _u.mutation.FileSizeCleared() {
		_spec.ClearField(documentimage.FieldFileSize, field.TypeInt)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DocumentImage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{documentimage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
