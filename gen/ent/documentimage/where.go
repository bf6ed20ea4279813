// Code generated by ent, DO NOT EDIT.

package documentimage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/candlekeep/candlekeep/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldEQ(FieldDocumentID, v))
}

// PageNumber applies equality check predicate on the "page_number" field. It's identical to PageNumberEQ.
func PageNumber(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldEQ(FieldPageNumber, v))
}

// PrintedPageNumber applies equality check predicate on the "printed_page_number" field. It's identical to PrintedPageNumberEQ.
func PrintedPageNumber(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldEQ(FieldPrintedPageNumber, v))
}

// Xref applies equality check predicate on the "xref" field. It's identical to XrefEQ.
func Xref(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldEQ(FieldXref, v))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldEQ(FieldFilePath, v))
}

// Width applies equality check predicate on the "width" field. It's identical to WidthEQ.
func Width(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldEQ(FieldWidth, v))
}

// Height applies equality check predicate on the "height" field. It's identical to HeightEQ.
func Height(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldEQ(FieldHeight, v))
}

// Format applies equality check predicate on the "format" field. It's identical to FormatEQ.
func Format(v string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldEQ(FieldFormat, v))
}

// Colorspace applies equality check predicate on the "colorspace" field. It's identical to ColorspaceEQ.
func Colorspace(v string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldEQ(FieldColorspace, v))
}

// HasTransparency applies equality check predicate on the "has_transparency" field. It's identical to HasTransparencyEQ.
func HasTransparency(v bool) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldEQ(FieldHasTransparency, v))
}

// FileSize applies equality check predicate on the "file_size" field. It's identical to FileSizeEQ.
func FileSize(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldEQ(FieldFileSize, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldEQ(FieldCreatedAt, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldNotIn(FieldDocumentID, vs...))
}

// PageNumberEQ applies the EQ predicate on the "page_number" field.
func PageNumberEQ(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldEQ(FieldPageNumber, v))
}

// PageNumberNEQ applies the NEQ predicate on the "page_number" field.
func PageNumberNEQ(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldNEQ(FieldPageNumber, v))
}

// PageNumberIn applies the In predicate on the "page_number" field.
func PageNumberIn(vs ...int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldIn(FieldPageNumber, vs...))
}

// PageNumberNotIn applies the NotIn predicate on the "page_number" field.
func PageNumberNotIn(vs ...int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldNotIn(FieldPageNumber, vs...))
}

// PageNumberGT applies the GT predicate on the "page_number" field.
func PageNumberGT(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldGT(FieldPageNumber, v))
}

// PageNumberGTE applies the GTE predicate on the "page_number" field.
func PageNumberGTE(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldGTE(FieldPageNumber, v))
}

// PageNumberLT applies the LT predicate on the "page_number" field.
func PageNumberLT(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldLT(FieldPageNumber, v))
}

// PageNumberLTE applies the LTE predicate on the "page_number" field.
func PageNumberLTE(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldLTE(FieldPageNumber, v))
}

// PrintedPageNumberEQ applies the EQ predicate on the "printed_page_number" field.
func PrintedPageNumberEQ(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldEQ(FieldPrintedPageNumber, v))
}

// PrintedPageNumberNEQ applies the NEQ predicate on the "printed_page_number" field.
func PrintedPageNumberNEQ(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldNEQ(FieldPrintedPageNumber, v))
}

// PrintedPageNumberIn applies the In predicate on the "printed_page_number" field.
func PrintedPageNumberIn(vs ...int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldIn(FieldPrintedPageNumber, vs...))
}

// PrintedPageNumberNotIn applies the NotIn predicate on the "printed_page_number" field.
func PrintedPageNumberNotIn(vs ...int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldNotIn(FieldPrintedPageNumber, vs...))
}

// PrintedPageNumberGT applies the GT predicate on the "printed_page_number" field.
func PrintedPageNumberGT(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldGT(FieldPrintedPageNumber, v))
}

// PrintedPageNumberGTE applies the GTE predicate on the "printed_page_number" field.
func PrintedPageNumberGTE(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldGTE(FieldPrintedPageNumber, v))
}

// PrintedPageNumberLT applies the LT predicate on the "printed_page_number" field.
func PrintedPageNumberLT(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldLT(FieldPrintedPageNumber, v))
}

// PrintedPageNumberLTE applies the LTE predicate on the "printed_page_number" field.
func PrintedPageNumberLTE(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldLTE(FieldPrintedPageNumber, v))
}

// PrintedPageNumberIsNil applies the IsNil predicate on the "printed_page_number" field.
func PrintedPageNumberIsNil() predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldIsNull(FieldPrintedPageNumber))
}

// PrintedPageNumberNotNil applies the NotNil predicate on the "printed_page_number" field.
func PrintedPageNumberNotNil() predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldNotNull(FieldPrintedPageNumber))
}

// XrefEQ applies the EQ predicate on the "xref" field.
func XrefEQ(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldEQ(FieldXref, v))
}

// XrefNEQ applies the NEQ predicate on the "xref" field.
func XrefNEQ(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldNEQ(FieldXref, v))
}

// XrefIn applies the In predicate on the "xref" field.
func XrefIn(vs ...int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldIn(FieldXref, vs...))
}

// XrefNotIn applies the NotIn predicate on the "xref" field.
func XrefNotIn(vs ...int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldNotIn(FieldXref, vs...))
}

// XrefGT applies the GT predicate on the "xref" field.
func XrefGT(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldGT(FieldXref, v))
}

// XrefGTE applies the GTE predicate on the "xref" field.
func XrefGTE(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldGTE(FieldXref, v))
}

// XrefLT applies the LT predicate on the "xref" field.
func XrefLT(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldLT(FieldXref, v))
}

// XrefLTE applies the LTE predicate on the "xref" field.
func XrefLTE(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldLTE(FieldXref, v))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldContainsFold(FieldFilePath, v))
}

// WidthEQ applies the EQ predicate on the "width" field.
func WidthEQ(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldEQ(FieldWidth, v))
}

// WidthNEQ applies the NEQ predicate on the "width" field.
func WidthNEQ(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldNEQ(FieldWidth, v))
}

// WidthIn applies the In predicate on the "width" field.
func WidthIn(vs ...int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldIn(FieldWidth, vs...))
}

// WidthNotIn applies the NotIn predicate on the "width" field.
func WidthNotIn(vs ...int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldNotIn(FieldWidth, vs...))
}

// WidthGT applies the GT predicate on the "width" field.
func WidthGT(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldGT(FieldWidth, v))
}

// WidthGTE applies the GTE predicate on the "width" field.
func WidthGTE(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldGTE(FieldWidth, v))
}

// WidthLT applies the LT predicate on the "width" field.
func WidthLT(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldLT(FieldWidth, v))
}

// WidthLTE applies the LTE predicate on the "width" field.
func WidthLTE(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldLTE(FieldWidth, v))
}

// HeightEQ applies the EQ predicate on the "height" field.
func HeightEQ(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldEQ(FieldHeight, v))
}

// HeightNEQ applies the NEQ predicate on the "height" field.
func HeightNEQ(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldNEQ(FieldHeight, v))
}

// HeightIn applies the In predicate on the "height" field.
func HeightIn(vs ...int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldIn(FieldHeight, vs...))
}

// HeightNotIn applies the NotIn predicate on the "height" field.
func HeightNotIn(vs ...int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldNotIn(FieldHeight, vs...))
}

// HeightGT applies the GT predicate on the "height" field.
func HeightGT(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldGT(FieldHeight, v))
}

// HeightGTE applies the GTE predicate on the "height" field.
func HeightGTE(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldGTE(FieldHeight, v))
}

// HeightLT applies the LT predicate on the "height" field.
func HeightLT(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldLT(FieldHeight, v))
}

// HeightLTE applies the LTE predicate on the "height" field.
func HeightLTE(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldLTE(FieldHeight, v))
}

// FormatEQ applies the EQ predicate on the "format" field.
func FormatEQ(v string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldEQ(FieldFormat, v))
}

// FormatNEQ applies the NEQ predicate on the "format" field.
func FormatNEQ(v string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldNEQ(FieldFormat, v))
}

// FormatIn applies the In predicate on the "format" field.
func FormatIn(vs ...string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldIn(FieldFormat, vs...))
}

// FormatNotIn applies the NotIn predicate on the "format" field.
func FormatNotIn(vs ...string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldNotIn(FieldFormat, vs...))
}

// FormatGT applies the GT predicate on the "format" field.
func FormatGT(v string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldGT(FieldFormat, v))
}

// FormatGTE applies the GTE predicate on the "format" field.
func FormatGTE(v string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldGTE(FieldFormat, v))
}

// FormatLT applies the LT predicate on the "format" field.
func FormatLT(v string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldLT(FieldFormat, v))
}

// FormatLTE applies the LTE predicate on the "format" field.
func FormatLTE(v string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldLTE(FieldFormat, v))
}

// FormatContains applies the Contains predicate on the "format" field.
func FormatContains(v string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldContains(FieldFormat, v))
}

// FormatHasPrefix applies the HasPrefix predicate on the "format" field.
func FormatHasPrefix(v string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldHasPrefix(FieldFormat, v))
}

// FormatHasSuffix applies the HasSuffix predicate on the "format" field.
func FormatHasSuffix(v string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldHasSuffix(FieldFormat, v))
}

// FormatEqualFold applies the EqualFold predicate on the "format" field.
func FormatEqualFold(v string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldEqualFold(FieldFormat, v))
}

// FormatContainsFold applies the ContainsFold predicate on the "format" field.
func FormatContainsFold(v string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldContainsFold(FieldFormat, v))
}

// ColorspaceEQ applies the EQ predicate on the "colorspace" field.
func ColorspaceEQ(v string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldEQ(FieldColorspace, v))
}

// ColorspaceNEQ applies the NEQ predicate on the "colorspace" field.
func ColorspaceNEQ(v string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldNEQ(FieldColorspace, v))
}

// ColorspaceIn applies the In predicate on the "colorspace" field.
func ColorspaceIn(vs ...string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldIn(FieldColorspace, vs...))
}

// ColorspaceNotIn applies the NotIn predicate on the "colorspace" field.
func ColorspaceNotIn(vs ...string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldNotIn(FieldColorspace, vs...))
}

// ColorspaceGT applies the GT predicate on the "colorspace" field.
func ColorspaceGT(v string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldGT(FieldColorspace, v))
}

// ColorspaceGTE applies the GTE predicate on the "colorspace" field.
func ColorspaceGTE(v string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldGTE(FieldColorspace, v))
}

// ColorspaceLT applies the LT predicate on the "colorspace" field.
func ColorspaceLT(v string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldLT(FieldColorspace, v))
}

// ColorspaceLTE applies the LTE predicate on the "colorspace" field.
func ColorspaceLTE(v string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldLTE(FieldColorspace, v))
}

// ColorspaceContains applies the Contains predicate on the "colorspace" field.
func ColorspaceContains(v string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldContains(FieldColorspace, v))
}

// ColorspaceHasPrefix applies the HasPrefix predicate on the "colorspace" field.
func ColorspaceHasPrefix(v string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldHasPrefix(FieldColorspace, v))
}

// ColorspaceHasSuffix applies the HasSuffix predicate on the "colorspace" field.
func ColorspaceHasSuffix(v string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldHasSuffix(FieldColorspace, v))
}

// ColorspaceIsNil applies the IsNil predicate on the "colorspace" field.
func ColorspaceIsNil() predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldIsNull(FieldColorspace))
}

// ColorspaceNotNil applies the NotNil predicate on the "colorspace" field.
func ColorspaceNotNil() predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldNotNull(FieldColorspace))
}

// ColorspaceEqualFold applies the EqualFold predicate on the "colorspace" field.
func ColorspaceEqualFold(v string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldEqualFold(FieldColorspace, v))
}

// ColorspaceContainsFold applies the ContainsFold predicate on the "colorspace" field.
func ColorspaceContainsFold(v string) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldContainsFold(FieldColorspace, v))
}

// HasTransparencyEQ applies the EQ predicate on the "has_transparency" field.
func HasTransparencyEQ(v bool) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldEQ(FieldHasTransparency, v))
}

// HasTransparencyNEQ applies the NEQ predicate on the "has_transparency" field.
func HasTransparencyNEQ(v bool) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldNEQ(FieldHasTransparency, v))
}

// FileSizeEQ applies the EQ predicate on the "file_size" field.
func FileSizeEQ(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldEQ(FieldFileSize, v))
}

// FileSizeNEQ applies the NEQ predicate on the "file_size" field.
func FileSizeNEQ(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldNEQ(FieldFileSize, v))
}

// FileSizeIn applies the In predicate on the "file_size" field.
func FileSizeIn(vs ...int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldIn(FieldFileSize, vs...))
}

// FileSizeNotIn applies the NotIn predicate on the "file_size" field.
func FileSizeNotIn(vs ...int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldNotIn(FieldFileSize, vs...))
}

// FileSizeGT applies the GT predicate on the "file_size" field.
func FileSizeGT(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldGT(FieldFileSize, v))
}

// FileSizeGTE applies the GTE predicate on the "file_size" field.
func FileSizeGTE(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldGTE(FieldFileSize, v))
}

// FileSizeLT applies the LT predicate on the "file_size" field.
func FileSizeLT(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldLT(FieldFileSize, v))
}

// FileSizeLTE applies the LTE predicate on the "file_size" field.
func FileSizeLTE(v int) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldLTE(FieldFileSize, v))
}

// FileSizeIsNil applies the IsNil predicate on the "file_size" field.
func FileSizeIsNil() predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldIsNull(FieldFileSize))
}

// FileSizeNotNil applies the NotNil predicate on the "file_size" field.
func FileSizeNotNil() predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldNotNull(FieldFileSize))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DocumentImage {
	return predicate.DocumentImage(sql.FieldLTE(FieldCreatedAt, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.DocumentImage {
	return predicate.DocumentImage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.DocumentImage {
	return predicate.DocumentImage(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DocumentImage) predicate.DocumentImage {
	return predicate.DocumentImage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DocumentImage) predicate.DocumentImage {
	return predicate.DocumentImage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DocumentImage) predicate.DocumentImage {
	return predicate.DocumentImage(sql.NotPredicates(p))
}
