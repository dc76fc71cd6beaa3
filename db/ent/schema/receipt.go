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

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Receipt struct{ ent.Schema }

func (Receipt) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "receipts"},
	}
}

func (Receipt) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("session_id", uuid.UUID{}),
		field.UUID("employee_id", uuid.UUID{}).Optional().Nillable(),
		field.Time("tx_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("merchant").NotEmpty(),
		field.Other("amount", decimal.Decimal{}).
			SchemaType(map[string]string{
				dialect.Postgres: "numeric(12,2)",
				dialect.SQLite:   "text",
			}),
		field.Bool("is_credit").Default(false),
		field.Bool("incomplete").Default(false),
		field.String("image_ref").Optional().Nillable(),
		field.String("source_file").NotEmpty(),
		field.String("source_line"),
		field.Time("created_at").Default(time.Now),
	}
}

func (Receipt) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("receipts").
			Field("session_id").
			Required().
			Unique(),
		edge.From("employee", Employee.Type).
			Ref("receipts").
			Field("employee_id").
			Unique(),
	}
}

func (Receipt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "source_file"),
		index.Fields("session_id", "employee_id"),
	}
}
