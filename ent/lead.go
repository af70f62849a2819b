// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/radarpme/radarpme/ent/lead"
)

// Lead is the model entity for the Lead schema.
type Lead struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Respondent name
	Name string `json:"name,omitempty"`
	// Respondent email
	Email string `json:"email,omitempty"`
	// Respondent phone (WhatsApp)
	Phone string `json:"phone,omitempty"`
	// Company name
	Company string `json:"company,omitempty"`
	// Business segment, free text
	Segment string `json:"segment,omitempty"`
	// Employee band, e.g. 1-5
	CompanySize string `json:"company_size,omitempty"`
	// Overall maturity score, 0-100
	Score int `json:"score,omitempty"`
	// Question id -> chosen answer value
	Answers map[string]string `json:"answers,omitempty"`
	// low, medium or high
	DiagnosisLevel string `json:"diagnosis_level,omitempty"`
	// Pillar name -> 0-100 score
	PillarScores map[string]int `json:"pillar_scores,omitempty"`
	// Serialized AI diagnosis when one was produced
	AiDiagnosis json.RawMessage `json:"ai_diagnosis,omitempty"`
	// Pipedrive deal id, 0 when CRM sync failed or is off
	CrmDealID int `json:"crm_deal_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Lead) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lead.FieldAnswers, lead.FieldPillarScores, lead.FieldAiDiagnosis:
			values[i] = new([]byte)
		case lead.FieldID, lead.FieldScore, lead.FieldCrmDealID:
			values[i] = new(sql.NullInt64)
		case lead.FieldName, lead.FieldEmail, lead.FieldPhone, lead.FieldCompany, lead.FieldSegment, lead.FieldCompanySize, lead.FieldDiagnosisLevel:
			values[i] = new(sql.NullString)
		case lead.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Lead fields.
func (_m *Lead) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lead.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case lead.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case lead.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case lead.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		case lead.FieldCompany:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company", values[i])
			} else if value.Valid {
				_m.Company = value.String
			}
		case lead.FieldSegment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field segment", values[i])
			} else if value.Valid {
				_m.Segment = value.String
			}
		case lead.FieldCompanySize:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_size", values[i])
			} else if value.Valid {
				_m.CompanySize = value.String
			}
		case lead.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case lead.FieldAnswers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field answers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Answers); err != nil {
					return fmt.Errorf("unmarshal field answers: %w", err)
				}
			}
		case lead.FieldDiagnosisLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field diagnosis_level", values[i])
			} else if value.Valid {
				_m.DiagnosisLevel = value.String
			}
		case lead.FieldPillarScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field pillar_scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PillarScores); err != nil {
					return fmt.Errorf("unmarshal field pillar_scores: %w", err)
				}
			}
		case lead.FieldAiDiagnosis:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field ai_diagnosis", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AiDiagnosis); err != nil {
					return fmt.Errorf("unmarshal field ai_diagnosis: %w", err)
				}
			}
		case lead.FieldCrmDealID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field crm_deal_id", values[i])
			} else if value.Valid {
				_m.CrmDealID = int(value.Int64)
			}
		case lead.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Lead.
// This includes values selected through modifiers, order, etc.
func (_m *Lead) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Lead.
// Note that you need to call Lead.Unwrap() before calling this method if this Lead
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Lead) Update() *LeadUpdateOne {
	return NewLeadClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Lead entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Lead) Unwrap() *Lead {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Lead is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Lead) String() string {
	var builder strings.Builder
	builder.WriteString("Lead(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("phone=")
	builder.WriteString(_m.Phone)
	builder.WriteString(", ")
	builder.WriteString("company=")
	builder.WriteString(_m.Company)
	builder.WriteString(", ")
	builder.WriteString("segment=")
	builder.WriteString(_m.Segment)
	builder.WriteString(", ")
	builder.WriteString("company_size=")
	builder.WriteString(_m.CompanySize)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Answers))
	builder.WriteString(", ")
	builder.WriteString("diagnosis_level=")
	builder.WriteString(_m.DiagnosisLevel)
	builder.WriteString(", ")
	builder.WriteString("pillar_scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.PillarScores))
	builder.WriteString(", ")
	builder.WriteString("ai_diagnosis=")
	builder.WriteString(fmt.Sprintf("%v", _m.AiDiagnosis))
	builder.WriteString(", ")
	builder.WriteString("crm_deal_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.CrmDealID))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Leads is a parsable slice of Lead.
type Leads []*Lead
