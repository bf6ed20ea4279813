// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/candlekeep/candlekeep/gen/ent/document"
	"github.com/candlekeep/candlekeep/gen/ent/documentimage"
)

// DocumentImage is the model entity for the DocumentImage schema.
type DocumentImage struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID int `json:"document_id,omitempty"`
	// PageNumber holds the value of the "page_number" field.
	PageNumber int `json:"page_number,omitempty"`
	// PrintedPageNumber holds the value of the "printed_page_number" field.
	PrintedPageNumber *int `json:"printed_page_number,omitempty"`
	// Xref holds the value of the "xref" field.
	Xref int `json:"xref,omitempty"`
	// FilePath holds the value of the "file_path" field.
	FilePath string `json:"file_path,omitempty"`
	// Width holds the value of the "width" field.
	Width int `json:"width,omitempty"`
	// Height holds the value of the "height" field.
	Height int `json:"height,omitempty"`
	// Format holds the value of the "format" field.
	Format string `json:"format,omitempty"`
	// Colorspace holds the value of the "colorspace" field.
	Colorspace string `json:"colorspace,omitempty"`
	// HasTransparency holds the value of the "has_transparency" field.
	HasTransparency bool `json:"has_transparency,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize *int `json:"file_size,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocumentImageQuery when eager-loading is set.
	Edges        DocumentImageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocumentImageEdges holds the relations/edges for other nodes in the graph.
type DocumentImageEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DocumentImageEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DocumentImage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case documentimage.FieldHasTransparency:
			values[i] = new(sql.NullBool)
		case documentimage.FieldID, documentimage.FieldDocumentID, documentimage.FieldPageNumber, documentimage.FieldPrintedPageNumber, documentimage.FieldXref, documentimage.FieldWidth, documentimage.FieldHeight, documentimage.FieldFileSize:
			values[i] = new(sql.NullInt64)
		case documentimage.FieldFilePath, documentimage.FieldFormat, documentimage.FieldColorspace:
			values[i] = new(sql.NullString)
		case documentimage.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DocumentImage fields.
func (_m *DocumentImage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case documentimage.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case documentimage.FieldDocumentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value.Valid {
				_m.DocumentID = int(value.Int64)
			}
		case documentimage.FieldPageNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_number", values[i])
			} else if value.Valid {
				_m.PageNumber = int(value.Int64)
			}
		case documentimage.FieldPrintedPageNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field printed_page_number", values[i])
			} else if value.Valid {
				_m.PrintedPageNumber = new(int)
				*_m.PrintedPageNumber = int(value.Int64)
			}
		case documentimage.FieldXref:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xref", values[i])
			} else if value.Valid {
				_m.Xref = int(value.Int64)
			}
		case documentimage.FieldFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_path", values[i])
			} else if value.Valid {
				_m.FilePath = value.String
			}
		case documentimage.FieldWidth:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field width", values[i])
			} else if value.Valid {
				_m.Width = int(value.Int64)
			}
		case documentimage.FieldHeight:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field height", values[i])
			} else if value.Valid {
				_m.Height = int(value.Int64)
			}
		case documentimage.FieldFormat:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field format", values[i])
			} else if value.Valid {
				_m.Format = value.String
			}
		case documentimage.FieldColorspace:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field colorspace", values[i])
			} else if value.Valid {
				_m.Colorspace = value.String
			}
		case documentimage.FieldHasTransparency:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_transparency", values[i])
			} else if value.Valid {
				_m.HasTransparency = value.Bool
			}
		case documentimage.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				_m.FileSize = new(int)
				*_m.FileSize = int(value.Int64)
			}
		case documentimage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DocumentImage.
// This includes values selected through modifiers, order, etc.
func (_m *DocumentImage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the DocumentImage entity.
func (_m *DocumentImage) QueryDocument() *DocumentQuery {
	return NewDocumentImageClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this DocumentImage.
// Note that you need to call DocumentImage.Unwrap() before calling this method if this DocumentImage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DocumentImage) Update() *DocumentImageUpdateOne {
	return NewDocumentImageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DocumentImage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DocumentImage) Unwrap() *DocumentImage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DocumentImage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DocumentImage) String() string {
	var builder strings.Builder
	builder.WriteString("DocumentImage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("page_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.PageNumber))
	builder.WriteString(", ")
	if v := _m.PrintedPageNumber; v != nil {
		builder.WriteString("printed_page_number=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("xref=")
	builder.WriteString(fmt.Sprintf("%v", _m.Xref))
	builder.WriteString(", ")
	builder.WriteString("file_path=")
	builder.WriteString(_m.FilePath)
	builder.WriteString(", ")
	builder.WriteString("width=")
	builder.WriteString(fmt.Sprintf("%v", _m.Width))
	builder.WriteString(", ")
	builder.WriteString("height=")
	builder.WriteString(fmt.Sprintf("%v", _m.Height))
	builder.WriteString(", ")
	builder.WriteString("format=")
	builder.WriteString(_m.Format)
	builder.WriteString(", ")
	builder.WriteString("colorspace=")
	builder.WriteString(_m.Colorspace)
	builder.WriteString(", ")
	builder.WriteString("has_transparency=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasTransparency))
	builder.WriteString(", ")
	if v := _m.FileSize; v != nil {
		builder.WriteString("file_size=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DocumentImages is a parsable slice of DocumentImage.
type DocumentImages []*DocumentImage
