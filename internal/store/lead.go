package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/radarpme/radarpme/ent"
	"github.com/radarpme/radarpme/ent/lead"
)

// leadRepo implements LeadRepo backed by ent.
type leadRepo struct {
	client *ent.Client
}

func (r *leadRepo) CreateLead(ctx context.Context, data LeadData) (int, error) {
	answers := data.Answers
	if answers == nil {
		answers = map[string]string{}
	}

	create := r.client.Lead.Create().
		SetName(data.Name).
		SetEmail(data.Email).
		SetPhone(data.Phone).
		SetCompany(data.Company).
		SetSegment(data.Segment).
		SetCompanySize(data.CompanySize).
		SetScore(data.Score).
		SetAnswers(answers).
		SetDiagnosisLevel(data.DiagnosisLevel).
		SetCrmDealID(data.CRMDealID)

	if data.PillarScores != nil {
		create = create.SetPillarScores(data.PillarScores)
	}

	row, err := create.Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("save lead: %w", err)
	}
	return row.ID, nil
}

func (r *leadRepo) AttachDiagnosis(ctx context.Context, id int, pillarScores map[string]int, aiDiagnosis json.RawMessage) error {
	update := r.client.Lead.UpdateOneID(id).
		SetPillarScores(pillarScores)
	if len(aiDiagnosis) > 0 {
		update = update.SetAiDiagnosis(aiDiagnosis)
	}

	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("attach diagnosis to lead %d: %w", id, err)
	}
	return nil
}

func (r *leadRepo) Get(ctx context.Context, id int) (*Lead, error) {
	row, err := r.client.Lead.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get lead %d: %w", id, err)
	}
	return leadFromRow(row), nil
}

func (r *leadRepo) Recent(ctx context.Context, limit int) ([]*Lead, error) {
	q := r.client.Lead.Query().
		Order(ent.Desc(lead.FieldCreatedAt), ent.Desc(lead.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query leads: %w", err)
	}

	leads := make([]*Lead, 0, len(rows))
	for _, row := range rows {
		leads = append(leads, leadFromRow(row))
	}
	return leads, nil
}

func leadFromRow(row *ent.Lead) *Lead {
	return &Lead{
		ID: row.ID,
		LeadData: LeadData{
			Name:           row.Name,
			Email:          row.Email,
			Phone:          row.Phone,
			Company:        row.Company,
			Segment:        row.Segment,
			CompanySize:    row.CompanySize,
			Score:          row.Score,
			Answers:        row.Answers,
			DiagnosisLevel: row.DiagnosisLevel,
			PillarScores:   row.PillarScores,
			CRMDealID:      row.CrmDealID,
		},
		AIDiagnosis: row.AiDiagnosis,
		CreatedAt:   row.CreatedAt,
	}
}
