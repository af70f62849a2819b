// Code generated by ent, DO NOT EDIT.

package lead

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/radarpme/radarpme/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldName, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldEmail, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldPhone, v))
}

// Company applies equality check predicate on the "company" field. It's identical to CompanyEQ.
func Company(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCompany, v))
}

// Segment applies equality check predicate on the "segment" field. It's identical to SegmentEQ.
func Segment(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldSegment, v))
}

// CompanySize applies equality check predicate on the "company_size" field. It's identical to CompanySizeEQ.
func CompanySize(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCompanySize, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldScore, v))
}

// DiagnosisLevel applies equality check predicate on the "diagnosis_level" field. It's identical to DiagnosisLevelEQ.
func DiagnosisLevel(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldDiagnosisLevel, v))
}

// CrmDealID applies equality check predicate on the "crm_deal_id" field. It's identical to CrmDealIDEQ.
func CrmDealID(v int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCrmDealID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldName, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldEmail, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldPhone, v))
}

// CompanyEQ applies the EQ predicate on the "company" field.
func CompanyEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCompany, v))
}

// CompanyNEQ applies the NEQ predicate on the "company" field.
func CompanyNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldCompany, v))
}

// CompanyIn applies the In predicate on the "company" field.
func CompanyIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldCompany, vs...))
}

// CompanyNotIn applies the NotIn predicate on the "company" field.
func CompanyNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldCompany, vs...))
}

// CompanyGT applies the GT predicate on the "company" field.
func CompanyGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldCompany, v))
}

// CompanyGTE applies the GTE predicate on the "company" field.
func CompanyGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldCompany, v))
}

// CompanyLT applies the LT predicate on the "company" field.
func CompanyLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldCompany, v))
}

// CompanyLTE applies the LTE predicate on the "company" field.
func CompanyLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldCompany, v))
}

// CompanyContains applies the Contains predicate on the "company" field.
func CompanyContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldCompany, v))
}

// CompanyHasPrefix applies the HasPrefix predicate on the "company" field.
func CompanyHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldCompany, v))
}

// CompanyHasSuffix applies the HasSuffix predicate on the "company" field.
func CompanyHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldCompany, v))
}

// CompanyEqualFold applies the EqualFold predicate on the "company" field.
func CompanyEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldCompany, v))
}

// CompanyContainsFold applies the ContainsFold predicate on the "company" field.
func CompanyContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldCompany, v))
}

// SegmentEQ applies the EQ predicate on the "segment" field.
func SegmentEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldSegment, v))
}

// SegmentNEQ applies the NEQ predicate on the "segment" field.
func SegmentNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldSegment, v))
}

// SegmentIn applies the In predicate on the "segment" field.
func SegmentIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldSegment, vs...))
}

// SegmentNotIn applies the NotIn predicate on the "segment" field.
func SegmentNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldSegment, vs...))
}

// SegmentGT applies the GT predicate on the "segment" field.
func SegmentGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldSegment, v))
}

// SegmentGTE applies the GTE predicate on the "segment" field.
func SegmentGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldSegment, v))
}

// SegmentLT applies the LT predicate on the "segment" field.
func SegmentLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldSegment, v))
}

// SegmentLTE applies the LTE predicate on the "segment" field.
func SegmentLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldSegment, v))
}

// SegmentContains applies the Contains predicate on the "segment" field.
func SegmentContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldSegment, v))
}

// SegmentHasPrefix applies the HasPrefix predicate on the "segment" field.
func SegmentHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldSegment, v))
}

// SegmentHasSuffix applies the HasSuffix predicate on the "segment" field.
func SegmentHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldSegment, v))
}

// SegmentEqualFold applies the EqualFold predicate on the "segment" field.
func SegmentEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldSegment, v))
}

// SegmentContainsFold applies the ContainsFold predicate on the "segment" field.
func SegmentContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldSegment, v))
}

// CompanySizeEQ applies the EQ predicate on the "company_size" field.
func CompanySizeEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCompanySize, v))
}

// CompanySizeNEQ applies the NEQ predicate on the "company_size" field.
func CompanySizeNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldCompanySize, v))
}

// CompanySizeIn applies the In predicate on the "company_size" field.
func CompanySizeIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldCompanySize, vs...))
}

// CompanySizeNotIn applies the NotIn predicate on the "company_size" field.
func CompanySizeNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldCompanySize, vs...))
}

// CompanySizeGT applies the GT predicate on the "company_size" field.
func CompanySizeGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldCompanySize, v))
}

// CompanySizeGTE applies the GTE predicate on the "company_size" field.
func CompanySizeGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldCompanySize, v))
}

// CompanySizeLT applies the LT predicate on the "company_size" field.
func CompanySizeLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldCompanySize, v))
}

// CompanySizeLTE applies the LTE predicate on the "company_size" field.
func CompanySizeLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldCompanySize, v))
}

// CompanySizeContains applies the Contains predicate on the "company_size" field.
func CompanySizeContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldCompanySize, v))
}

// CompanySizeHasPrefix applies the HasPrefix predicate on the "company_size" field.
func CompanySizeHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldCompanySize, v))
}

// CompanySizeHasSuffix applies the HasSuffix predicate on the "company_size" field.
func CompanySizeHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldCompanySize, v))
}

// CompanySizeEqualFold applies the EqualFold predicate on the "company_size" field.
func CompanySizeEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldCompanySize, v))
}

// CompanySizeContainsFold applies the ContainsFold predicate on the "company_size" field.
func CompanySizeContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldCompanySize, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldScore, v))
}

// DiagnosisLevelEQ applies the EQ predicate on the "diagnosis_level" field.
func DiagnosisLevelEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldDiagnosisLevel, v))
}

// DiagnosisLevelNEQ applies the NEQ predicate on the "diagnosis_level" field.
func DiagnosisLevelNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldDiagnosisLevel, v))
}

// DiagnosisLevelIn applies the In predicate on the "diagnosis_level" field.
func DiagnosisLevelIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldDiagnosisLevel, vs...))
}

// DiagnosisLevelNotIn applies the NotIn predicate on the "diagnosis_level" field.
func DiagnosisLevelNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldDiagnosisLevel, vs...))
}

// DiagnosisLevelGT applies the GT predicate on the "diagnosis_level" field.
func DiagnosisLevelGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldDiagnosisLevel, v))
}

// DiagnosisLevelGTE applies the GTE predicate on the "diagnosis_level" field.
func DiagnosisLevelGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldDiagnosisLevel, v))
}

// DiagnosisLevelLT applies the LT predicate on the "diagnosis_level" field.
func DiagnosisLevelLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldDiagnosisLevel, v))
}

// DiagnosisLevelLTE applies the LTE predicate on the "diagnosis_level" field.
func DiagnosisLevelLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldDiagnosisLevel, v))
}

// DiagnosisLevelContains applies the Contains predicate on the "diagnosis_level" field.
func DiagnosisLevelContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldDiagnosisLevel, v))
}

// DiagnosisLevelHasPrefix applies the HasPrefix predicate on the "diagnosis_level" field.
func DiagnosisLevelHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldDiagnosisLevel, v))
}

// DiagnosisLevelHasSuffix applies the HasSuffix predicate on the "diagnosis_level" field.
func DiagnosisLevelHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldDiagnosisLevel, v))
}

// DiagnosisLevelEqualFold applies the EqualFold predicate on the "diagnosis_level" field.
func DiagnosisLevelEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldDiagnosisLevel, v))
}

// DiagnosisLevelContainsFold applies the ContainsFold predicate on the "diagnosis_level" field.
func DiagnosisLevelContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldDiagnosisLevel, v))
}

// PillarScoresIsNil applies the IsNil predicate on the "pillar_scores" field.
func PillarScoresIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldPillarScores))
}

// PillarScoresNotNil applies the NotNil predicate on the "pillar_scores" field.
func PillarScoresNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldPillarScores))
}

// AiDiagnosisIsNil applies the IsNil predicate on the "ai_diagnosis" field.
func AiDiagnosisIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldAiDiagnosis))
}

// AiDiagnosisNotNil applies the NotNil predicate on the "ai_diagnosis" field.
func AiDiagnosisNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldAiDiagnosis))
}

// CrmDealIDEQ applies the EQ predicate on the "crm_deal_id" field.
func CrmDealIDEQ(v int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCrmDealID, v))
}

// CrmDealIDNEQ applies the NEQ predicate on the "crm_deal_id" field.
func CrmDealIDNEQ(v int) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldCrmDealID, v))
}

// CrmDealIDIn applies the In predicate on the "crm_deal_id" field.
func CrmDealIDIn(vs ...int) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldCrmDealID, vs...))
}

// CrmDealIDNotIn applies the NotIn predicate on the "crm_deal_id" field.
func CrmDealIDNotIn(vs ...int) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldCrmDealID, vs...))
}

// CrmDealIDGT applies the GT predicate on the "crm_deal_id" field.
func CrmDealIDGT(v int) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldCrmDealID, v))
}

// CrmDealIDGTE applies the GTE predicate on the "crm_deal_id" field.
func CrmDealIDGTE(v int) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldCrmDealID, v))
}

// CrmDealIDLT applies the LT predicate on the "crm_deal_id" field.
func CrmDealIDLT(v int) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldCrmDealID, v))
}

// CrmDealIDLTE applies the LTE predicate on the "crm_deal_id" field.
func CrmDealIDLTE(v int) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldCrmDealID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Lead) predicate.Lead {
	return predicate.Lead(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Lead) predicate.Lead {
	return predicate.Lead(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Lead) predicate.Lead {
	return predicate.Lead(sql.NotPredicates(p))
}
