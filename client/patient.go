package client

import (
	"context"
	"net/http"
	"net/url"

	"LifeCarePortal/models"
)

const (
	PatientsPath      = "/patients"
	PatientRegister   = "/patients/register"
	PatientLogin      = "/patients/login"
	HealthRecordsPath = "/health-records"
)

func (c *Client) RegisterPatient(ctx context.Context, reg models.PatientRegistration) (models.ID, error) {
	var res models.PatientRegistered
	if err := c.do(ctx, http.MethodPost, PatientRegister, "", reg, &res); err != nil {
		return "", err
	}
	if res.ID == "" {
		return "", ErrMissingID
	}
	return res.ID, nil
}

func (c *Client) LoginPatient(ctx context.Context, creds models.Credentials) (models.PatientLogin, error) {
	var res models.PatientLogin
	if err := c.do(ctx, http.MethodPost, PatientLogin, "", creds, &res); err != nil {
		return models.PatientLogin{}, err
	}
	if res.Token == "" {
		return models.PatientLogin{}, ErrMissingToken
	}
	return res, nil
}

func (c *Client) GetPatient(ctx context.Context, token string, id models.ID) (models.Patient, error) {
	var p models.Patient
	err := c.do(ctx, http.MethodGet, PatientsPath+"/"+url.PathEscape(id.String()), token, nil, &p)
	return p, err
}

func (c *Client) UpdatePatient(ctx context.Context, token string, id models.ID, p models.Patient) (models.Patient, error) {
	var updated models.Patient
	err := c.do(ctx, http.MethodPut, PatientsPath+"/"+url.PathEscape(id.String()), token, p, &updated)
	return updated, err
}

func (c *Client) GetHealthRecords(ctx context.Context, token string, patientID models.ID) (string, error) {
	var rec models.HealthRecord
	err := c.do(ctx, http.MethodGet, HealthRecordsPath+"/"+url.PathEscape(patientID.String()), token, nil, &rec)
	return rec.Records, err
}

// UpdateHealthRecords overwrites the record text and answers what the
// backend stored. A reply without healthRecords echoes the sent text.
func (c *Client) UpdateHealthRecords(ctx context.Context, token string, patientID models.ID, records string) (string, error) {
	var res models.HealthRecordSaved
	err := c.do(ctx, http.MethodPut, HealthRecordsPath+"/"+url.PathEscape(patientID.String()), token, models.HealthRecord{Records: records}, &res)
	if err != nil {
		return "", err
	}
	if res.HealthRecords == nil {
		return records, nil
	}
	return *res.HealthRecords, nil
}
