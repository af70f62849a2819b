// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/radarpme/radarpme/ent/lead"
	"github.com/radarpme/radarpme/ent/predicate"
)

// LeadUpdate is the builder for updating Lead entities.
type LeadUpdate struct {
	config
	hooks    []Hook
	mutation *LeadMutation
}

// Where appends a list predicates to the LeadUpdate builder.
func (_u *LeadUpdate) Where(ps ...predicate.Lead) *LeadUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *LeadUpdate) SetName(v string) *LeadUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableName(v *string) *LeadUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *LeadUpdate) SetEmail(v string) *LeadUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableEmail(v *string) *LeadUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *LeadUpdate) SetPhone(v string) *LeadUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *LeadUpdate) SetNillablePhone(v *string) *LeadUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetCompany sets the "company" field.
func (_u *LeadUpdate) SetCompany(v string) *LeadUpdate {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableCompany(v *string) *LeadUpdate {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// SetSegment sets the "segment" field.
func (_u *LeadUpdate) SetSegment(v string) *LeadUpdate {
	_u.mutation.SetSegment(v)
	return _u
}

// SetNillableSegment sets the "segment" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableSegment(v *string) *LeadUpdate {
	if v != nil {
		_u.SetSegment(*v)
	}
	return _u
}

// SetCompanySize sets the "company_size" field.
func (_u *LeadUpdate) SetCompanySize(v string) *LeadUpdate {
	_u.mutation.SetCompanySize(v)
	return _u
}

// SetNillableCompanySize sets the "company_size" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableCompanySize(v *string) *LeadUpdate {
	if v != nil {
		_u.SetCompanySize(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *LeadUpdate) SetScore(v int) *LeadUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableScore(v *int) *LeadUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *LeadUpdate) AddScore(v int) *LeadUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *LeadUpdate) SetAnswers(v map[string]string) *LeadUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// SetDiagnosisLevel sets the "diagnosis_level" field.
func (_u *LeadUpdate) SetDiagnosisLevel(v string) *LeadUpdate {
	_u.mutation.SetDiagnosisLevel(v)
	return _u
}

// SetNillableDiagnosisLevel sets the "diagnosis_level" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableDiagnosisLevel(v *string) *LeadUpdate {
	if v != nil {
		_u.SetDiagnosisLevel(*v)
	}
	return _u
}

// SetPillarScores sets the "pillar_scores" field.
func (_u *LeadUpdate) SetPillarScores(v map[string]int) *LeadUpdate {
	_u.mutation.SetPillarScores(v)
	return _u
}

// ClearPillarScores clears the value of the "pillar_scores" field.
func (_u *LeadUpdate) ClearPillarScores() *LeadUpdate {
	_u.mutation.ClearPillarScores()
	return _u
}

// SetAiDiagnosis sets the "ai_diagnosis" field.
func (_u *LeadUpdate) SetAiDiagnosis(v json.RawMessage) *LeadUpdate {
	_u.mutation.SetAiDiagnosis(v)
	return _u
}

// AppendAiDiagnosis appends value to the "ai_diagnosis" field.
func (_u *LeadUpdate) AppendAiDiagnosis(v json.RawMessage) *LeadUpdate {
	_u.mutation.AppendAiDiagnosis(v)
	return _u
}

// ClearAiDiagnosis clears the value of the "ai_diagnosis" field.
func (_u *LeadUpdate) ClearAiDiagnosis() *LeadUpdate {
	_u.mutation.ClearAiDiagnosis()
	return _u
}

// SetCrmDealID sets the "crm_deal_id" field.
func (_u *LeadUpdate) SetCrmDealID(v int) *LeadUpdate {
	_u.mutation.ResetCrmDealID()
	_u.mutation.SetCrmDealID(v)
	return _u
}

// SetNillableCrmDealID sets the "crm_deal_id" field if the given value is not nil.
func (_u *LeadUpdate) SetNillableCrmDealID(v *int) *LeadUpdate {
	if v != nil {
		_u.SetCrmDealID(*v)
	}
	return _u
}

// AddCrmDealID adds value to the "crm_deal_id" field.
func (_u *LeadUpdate) AddCrmDealID(v int) *LeadUpdate {
	_u.mutation.AddCrmDealID(v)
	return _u
}

// Mutation returns the LeadMutation object of the builder.
func (_u *LeadUpdate) Mutation() *LeadMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LeadUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LeadUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LeadUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(lead.Table, lead.Columns, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(lead.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(lead.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(lead.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(lead.FieldCompany, field.TypeString, value)
	}
	if value, ok := _u.mutation.Segment(); ok {
		_spec.SetField(lead.FieldSegment, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanySize(); ok {
		_spec.SetField(lead.FieldCompanySize, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(lead.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(lead.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(lead.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.DiagnosisLevel(); ok {
		_spec.SetField(lead.FieldDiagnosisLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.PillarScores(); ok {
		_spec.SetField(lead.FieldPillarScores, field.TypeJSON, value)
	}
	if _u.mutation.PillarScoresCleared() {
		_spec.ClearField(lead.FieldPillarScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.AiDiagnosis(); ok {
		_spec.SetField(lead.FieldAiDiagnosis, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAiDiagnosis(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lead.FieldAiDiagnosis, value)
		})
	}
	if _u.mutation.AiDiagnosisCleared() {
		_spec.ClearField(lead.FieldAiDiagnosis, field.TypeJSON)
	}
	if value, ok := _u.mutation.CrmDealID(); ok {
		_spec.SetField(lead.FieldCrmDealID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCrmDealID(); ok {
		_spec.AddField(lead.FieldCrmDealID, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lead.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LeadUpdateOne is the builder for updating a single Lead entity.
type LeadUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LeadMutation
}

// SetName sets the "name" field.
func (_u *LeadUpdateOne) SetName(v string) *LeadUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableName(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *LeadUpdateOne) SetEmail(v string) *LeadUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableEmail(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *LeadUpdateOne) SetPhone(v string) *LeadUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillablePhone(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetCompany sets the "company" field.
func (_u *LeadUpdateOne) SetCompany(v string) *LeadUpdateOne {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableCompany(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// SetSegment sets the "segment" field.
func (_u *LeadUpdateOne) SetSegment(v string) *LeadUpdateOne {
	_u.mutation.SetSegment(v)
	return _u
}

// SetNillableSegment sets the "segment" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableSegment(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetSegment(*v)
	}
	return _u
}

// SetCompanySize sets the "company_size" field.
func (_u *LeadUpdateOne) SetCompanySize(v string) *LeadUpdateOne {
	_u.mutation.SetCompanySize(v)
	return _u
}

// SetNillableCompanySize sets the "company_size" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableCompanySize(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetCompanySize(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *LeadUpdateOne) SetScore(v int) *LeadUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableScore(v *int) *LeadUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *LeadUpdateOne) AddScore(v int) *LeadUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *LeadUpdateOne) SetAnswers(v map[string]string) *LeadUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// SetDiagnosisLevel sets the "diagnosis_level" field.
func (_u *LeadUpdateOne) SetDiagnosisLevel(v string) *LeadUpdateOne {
	_u.mutation.SetDiagnosisLevel(v)
	return _u
}

// SetNillableDiagnosisLevel sets the "diagnosis_level" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableDiagnosisLevel(v *string) *LeadUpdateOne {
	if v != nil {
		_u.SetDiagnosisLevel(*v)
	}
	return _u
}

// SetPillarScores sets the "pillar_scores" field.
func (_u *LeadUpdateOne) SetPillarScores(v map[string]int) *LeadUpdateOne {
	_u.mutation.SetPillarScores(v)
	return _u
}

// ClearPillarScores clears the value of the "pillar_scores" field.
func (_u *LeadUpdateOne) ClearPillarScores() *LeadUpdateOne {
	_u.mutation.ClearPillarScores()
	return _u
}

// SetAiDiagnosis sets the "ai_diagnosis" field.
func (_u *LeadUpdateOne) SetAiDiagnosis(v json.RawMessage) *LeadUpdateOne {
	_u.mutation.SetAiDiagnosis(v)
	return _u
}

// AppendAiDiagnosis appends value to the "ai_diagnosis" field.
func (_u *LeadUpdateOne) AppendAiDiagnosis(v json.RawMessage) *LeadUpdateOne {
	_u.mutation.AppendAiDiagnosis(v)
	return _u
}

// ClearAiDiagnosis clears the value of the "ai_diagnosis" field.
func (_u *LeadUpdateOne) ClearAiDiagnosis() *LeadUpdateOne {
	_u.mutation.ClearAiDiagnosis()
	return _u
}

// SetCrmDealID sets the "crm_deal_id" field.
func (_u *LeadUpdateOne) SetCrmDealID(v int) *LeadUpdateOne {
	_u.mutation.ResetCrmDealID()
	_u.mutation.SetCrmDealID(v)
	return _u
}

// SetNillableCrmDealID sets the "crm_deal_id" field if the given value is not nil.
func (_u *LeadUpdateOne) SetNillableCrmDealID(v *int) *LeadUpdateOne {
	if v != nil {
		_u.SetCrmDealID(*v)
	}
	return _u
}

// AddCrmDealID adds value to the "crm_deal_id" field.
func (_u *LeadUpdateOne) AddCrmDealID(v int) *LeadUpdateOne {
	_u.mutation.AddCrmDealID(v)
	return _u
}

// Mutation returns the LeadMutation object of the builder.
func (_u *LeadUpdateOne) Mutation() *LeadMutation {
	return _u.mutation
}

// Where appends a list predicates to the LeadUpdate builder.
func (_u *LeadUpdateOne) Where(ps ...predicate.Lead) *LeadUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LeadUpdateOne) Select(field string, fields ...string) *LeadUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Lead entity.
func (_u *LeadUpdateOne) Save(ctx context.Context) (*Lead, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadUpdateOne) SaveX(ctx context.Context) *Lead {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LeadUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *LeadUpdateOne) sqlSave(ctx context.Context) (_node *Lead, err error) {
	_spec := sqlgraph.NewUpdateSpec(lead.Table, lead.Columns, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Lead.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lead.FieldID)
		for _, f := range fields {
			if !lead.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lead.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(lead.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(lead.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(lead.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(lead.FieldCompany, field.TypeString, value)
	}
	if value, ok := _u.mutation.Segment(); ok {
		_spec.SetField(lead.FieldSegment, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanySize(); ok {
		_spec.SetField(lead.FieldCompanySize, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(lead.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(lead.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(lead.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.DiagnosisLevel(); ok {
		_spec.SetField(lead.FieldDiagnosisLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.PillarScores(); ok {
		_spec.SetField(lead.FieldPillarScores, field.TypeJSON, value)
	}
	if _u.mutation.PillarScoresCleared() {
		_spec.ClearField(lead.FieldPillarScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.AiDiagnosis(); ok {
		_spec.SetField(lead.FieldAiDiagnosis, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAiDiagnosis(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, lead.FieldAiDiagnosis, value)
		})
	}
	if _u.mutation.AiDiagnosisCleared() {
		_spec.ClearField(lead.FieldAiDiagnosis, field.TypeJSON)
	}
	if value, ok := _u.mutation.CrmDealID(); ok {
		_spec.SetField(lead.FieldCrmDealID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCrmDealID(); ok {
		_spec.AddField(lead.FieldCrmDealID, field.TypeInt, value)
	}
	_node = &Lead{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lead.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
