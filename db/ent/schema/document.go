package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/candlekeep/candlekeep/constants"
	"github.com/candlekeep/candlekeep/db/ent/schema/utils"
	"github.com/candlekeep/candlekeep/internal/entity"
)

// Document stores metadata only; canonical text lives in markdown files
// under the library root.
type Document struct {
	ent.Schema
}

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		// implicit auto-increment int id
		field.String("title").NotEmpty().MaxLen(500),
		field.String("author").Optional().MaxLen(255),
		field.String("source_type").
			Validate(utils.EnumValidator(string(constants.SourcePDF), string(constants.SourceMarkdown))),
		// sha256 hex digest, the sole dedup key
		field.String("content_hash").NotEmpty().MinLen(64).MaxLen(64).Unique(),
		field.String("markdown_path").NotEmpty().MaxLen(1000),
		field.String("original_path").Optional().MaxLen(1000),

		field.Int("page_count").Optional().Nillable(),
		field.Int("word_count").Default(0),
		field.Int("chapter_count").Default(0),
		field.JSON("table_of_contents", []entity.TOCEntry{}).Optional(),

		field.String("subject").Optional().MaxLen(500),
		field.Text("keywords").Optional(),
		field.String("category").Optional().MaxLen(100),
		field.JSON("tags", []string{}).Optional(),

		field.Time("pdf_creation_date").Optional().Nillable(),
		field.Time("pdf_mod_date").Optional().Nillable(),
		field.String("pdf_creator").Optional().MaxLen(255),
		field.String("pdf_producer").Optional().MaxLen(255),

		field.String("isbn").Optional().MaxLen(20),
		field.String("publisher").Optional().MaxLen(255),
		field.Int("publication_year").Optional().Nillable(),
		field.String("language").Default("en").MaxLen(10),

		field.Int("image_count").Default(0).NonNegative(),
		field.Bool("has_images").Default(false),

		field.Time("added_at").Default(time.Now).Immutable(),
		field.Time("modified_at").Default(time.Now).UpdateDefault(time.Now).
			SchemaType(map[string]string{dialect.Postgres: "timestamptz"}),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE document -> MANY images, removed with the document.
		// Named "attachments" because an "images" edge would collide with
		// the has_images field in the generated predicates.
		edge.To("attachments", DocumentImage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("title"),
		index.Fields("author"),
		index.Fields("source_type"),
		index.Fields("category"),
		index.Fields("has_images"),
	}
}
