// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/radarpme/radarpme/ent/lead"
)

// LeadCreate is the builder for creating a Lead entity.
type LeadCreate struct {
	config
	mutation *LeadMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *LeadCreate) SetName(v string) *LeadCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *LeadCreate) SetEmail(v string) *LeadCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetPhone sets the "phone" field.
func (_c *LeadCreate) SetPhone(v string) *LeadCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *LeadCreate) SetNillablePhone(v *string) *LeadCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetCompany sets the "company" field.
func (_c *LeadCreate) SetCompany(v string) *LeadCreate {
	_c.mutation.SetCompany(v)
	return _c
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_c *LeadCreate) SetNillableCompany(v *string) *LeadCreate {
	if v != nil {
		_c.SetCompany(*v)
	}
	return _c
}

// SetSegment sets the "segment" field.
func (_c *LeadCreate) SetSegment(v string) *LeadCreate {
	_c.mutation.SetSegment(v)
	return _c
}

// SetNillableSegment sets the "segment" field if the given value is not nil.
func (_c *LeadCreate) SetNillableSegment(v *string) *LeadCreate {
	if v != nil {
		_c.SetSegment(*v)
	}
	return _c
}

// SetCompanySize sets the "company_size" field.
func (_c *LeadCreate) SetCompanySize(v string) *LeadCreate {
	_c.mutation.SetCompanySize(v)
	return _c
}

// SetNillableCompanySize sets the "company_size" field if the given value is not nil.
func (_c *LeadCreate) SetNillableCompanySize(v *string) *LeadCreate {
	if v != nil {
		_c.SetCompanySize(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *LeadCreate) SetScore(v int) *LeadCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *LeadCreate) SetAnswers(v map[string]string) *LeadCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetDiagnosisLevel sets the "diagnosis_level" field.
func (_c *LeadCreate) SetDiagnosisLevel(v string) *LeadCreate {
	_c.mutation.SetDiagnosisLevel(v)
	return _c
}

// SetPillarScores sets the "pillar_scores" field.
func (_c *LeadCreate) SetPillarScores(v map[string]int) *LeadCreate {
	_c.mutation.SetPillarScores(v)
	return _c
}

// SetAiDiagnosis sets the "ai_diagnosis" field.
func (_c *LeadCreate) SetAiDiagnosis(v json.RawMessage) *LeadCreate {
	_c.mutation.SetAiDiagnosis(v)
	return _c
}

// SetCrmDealID sets the "crm_deal_id" field.
func (_c *LeadCreate) SetCrmDealID(v int) *LeadCreate {
	_c.mutation.SetCrmDealID(v)
	return _c
}

// SetNillableCrmDealID sets the "crm_deal_id" field if the given value is not nil.
func (_c *LeadCreate) SetNillableCrmDealID(v *int) *LeadCreate {
	if v != nil {
		_c.SetCrmDealID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *LeadCreate) SetCreatedAt(v time.Time) *LeadCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LeadCreate) SetNillableCreatedAt(v *time.Time) *LeadCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the LeadMutation object of the builder.
func (_c *LeadCreate) Mutation() *LeadMutation {
	return _c.mutation
}

// Save creates the Lead in the database.
func (_c *LeadCreate) Save(ctx context.Context) (*Lead, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LeadCreate) SaveX(ctx context.Context) *Lead {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LeadCreate) defaults() {
	if _, ok := _c.mutation.Phone(); !ok {
		v := lead.DefaultPhone
		_c.mutation.SetPhone(v)
	}
	if _, ok := _c.mutation.Company(); !ok {
		v := lead.DefaultCompany
		_c.mutation.SetCompany(v)
	}
	if _, ok := _c.mutation.Segment(); !ok {
		v := lead.DefaultSegment
		_c.mutation.SetSegment(v)
	}
	if _, ok := _c.mutation.CompanySize(); !ok {
		v := lead.DefaultCompanySize
		_c.mutation.SetCompanySize(v)
	}
	if _, ok := _c.mutation.CrmDealID(); !ok {
		v := lead.DefaultCrmDealID
		_c.mutation.SetCrmDealID(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := lead.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LeadCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Lead.name"`)}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "Lead.email"`)}
	}
	if _, ok := _c.mutation.Phone(); !ok {
		return &ValidationError{Name: "phone", err: errors.New(`ent: missing required field "Lead.phone"`)}
	}
	if _, ok := _c.mutation.Company(); !ok {
		return &ValidationError{Name: "company", err: errors.New(`ent: missing required field "Lead.company"`)}
	}
	if _, ok := _c.mutation.Segment(); !ok {
		return &ValidationError{Name: "segment", err: errors.New(`ent: missing required field "Lead.segment"`)}
	}
	if _, ok := _c.mutation.CompanySize(); !ok {
		return &ValidationError{Name: "company_size", err: errors.New(`ent: missing required field "Lead.company_size"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "Lead.score"`)}
	}
	if _, ok := _c.mutation.Answers(); !ok {
		return &ValidationError{Name: "answers", err: errors.New(`ent: missing required field "Lead.answers"`)}
	}
	if _, ok := _c.mutation.DiagnosisLevel(); !ok {
		return &ValidationError{Name: "diagnosis_level", err: errors.New(`ent: missing required field "Lead.diagnosis_level"`)}
	}
	if _, ok := _c.mutation.CrmDealID(); !ok {
		return &ValidationError{Name: "crm_deal_id", err: errors.New(`ent: missing required field "Lead.crm_deal_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Lead.created_at"`)}
	}
	return nil
}

func (_c *LeadCreate) sqlSave(ctx context.Context) (*Lead, error) {
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

func (_c *LeadCreate) createSpec() (*Lead, *sqlgraph.CreateSpec) {
	var (
		_node = &Lead{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lead.Table, sqlgraph.NewFieldSpec(lead.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(lead.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(lead.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(lead.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Company(); ok {
		_spec.SetField(lead.FieldCompany, field.TypeString, value)
		_node.Company = value
	}
	if value, ok := _c.mutation.Segment(); ok {
		_spec.SetField(lead.FieldSegment, field.TypeString, value)
		_node.Segment = value
	}
	if value, ok := _c.mutation.CompanySize(); ok {
		_spec.SetField(lead.FieldCompanySize, field.TypeString, value)
		_node.CompanySize = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(lead.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(lead.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.DiagnosisLevel(); ok {
		_spec.SetField(lead.FieldDiagnosisLevel, field.TypeString, value)
		_node.DiagnosisLevel = value
	}
	if value, ok := _c.mutation.PillarScores(); ok {
		_spec.SetField(lead.FieldPillarScores, field.TypeJSON, value)
		_node.PillarScores = value
	}
	if value, ok := _c.mutation.AiDiagnosis(); ok {
		_spec.SetField(lead.FieldAiDiagnosis, field.TypeJSON, value)
		_node.AiDiagnosis = value
	}
	if value, ok := _c.mutation.CrmDealID(); ok {
		_spec.SetField(lead.FieldCrmDealID, field.TypeInt, value)
		_node.CrmDealID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(lead.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// LeadCreateBulk is the builder for creating many Lead entities in bulk.
type LeadCreateBulk struct {
	config
	err      error
	builders []*LeadCreate
}

// Save creates the Lead entities in the database.
func (_c *LeadCreateBulk) Save(ctx context.Context) ([]*Lead, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Lead, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LeadMutation)
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
func (_c *LeadCreateBulk) SaveX(ctx context.Context) []*Lead {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
