package services

import (
	"context"
	"encoding/json"

	"github.com/Ibrahim-ahmed05/Employees-Attrition-Prediction/records-service/models"
	"github.com/supabase-community/supabase-go"
)

const employeesTable = "employees"

// EmployeeStore is a pass-through client for the external employees
// table. No validation, transformation, retries or pagination: the
// datastore's behavior is the behavior.
type EmployeeStore interface {
	Insert(ctx context.Context, record models.EmployeeRecord) (json.RawMessage, error)
	ListAll(ctx context.Context) (json.RawMessage, error)
}

type supabaseStore struct {
	client *supabase.Client
}

// NewEmployeeStore connects to the managed datastore. url and key are
// the two environment-supplied connection strings.
func NewEmployeeStore(url, key string) (EmployeeStore, error) {
	client, err := supabase.NewClient(url, key, &supabase.ClientOptions{})
	if err != nil {
		return nil, err
	}
	return &supabaseStore{client: client}, nil
}

func (s *supabaseStore) Insert(_ context.Context, record models.EmployeeRecord) (json.RawMessage, error) {
	data, _, err := s.client.From(employeesTable).
		Insert(record, false, "", "representation", "").
		Execute()
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}

func (s *supabaseStore) ListAll(_ context.Context) (json.RawMessage, error) {
	data, _, err := s.client.From(employeesTable).
		Select("*", "", false).
		Execute()
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}
