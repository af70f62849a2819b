package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lead is one completed quiz submission: contact data, answers, score
// and the diagnosis shown to the respondent. CRM failures never block
// this record, so it is the source of truth for captured leads.
type Lead struct {
	ent.Schema
}

func (Lead) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Comment("Respondent name"),
		field.String("email").
			Comment("Respondent email"),
		field.String("phone").
			Default("").
			Comment("Respondent phone (WhatsApp)"),
		field.String("company").
			Default("").
			Comment("Company name"),
		field.String("segment").
			Default("").
			Comment("Business segment, free text"),
		field.String("company_size").
			Default("").
			Comment("Employee band, e.g. 1-5"),
		field.Int("score").
			Comment("Overall maturity score, 0-100"),
		field.JSON("answers", map[string]string{}).
			Comment("Question id -> chosen answer value"),
		field.String("diagnosis_level").
			Comment("low, medium or high"),
		field.JSON("pillar_scores", map[string]int{}).
			Optional().
			Comment("Pillar name -> 0-100 score"),
		field.JSON("ai_diagnosis", json.RawMessage{}).
			Optional().
			Comment("Serialized AI diagnosis when one was produced"),
		field.Int("crm_deal_id").
			Default(0).
			Comment("Pipedrive deal id, 0 when CRM sync failed or is off"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Lead) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
		index.Fields("created_at"),
	}
}
