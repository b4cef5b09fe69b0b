package service

import (
	"context"

	"pharmastock/internal/dto"

	"golang.org/x/crypto/bcrypt"
)

const (
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

// RoleService validates the doctor/patient view switch. It grants a role
// label only; no other route checks it.
type RoleService interface {
	Switch(ctx context.Context, req dto.SwitchRoleRequest) (*dto.RoleResponse, error)
}

type roleService struct {
	doctorHash []byte
}

// NewRoleService takes the bcrypt hash of the doctor password. An empty hash
// leaves only the patient role available.
func NewRoleService(doctorPasswordHash string) RoleService {
	return &roleService{doctorHash: []byte(doctorPasswordHash)}
}

func (s *roleService) Switch(_ context.Context, req dto.SwitchRoleRequest) (*dto.RoleResponse, error) {
	switch req.Role {
	case RolePatient:
		return &dto.RoleResponse{Role: RolePatient}, nil
	case RoleDoctor:
		if len(s.doctorHash) == 0 {
			return nil, ErrInvalidRole
		}
		if err := bcrypt.CompareHashAndPassword(s.doctorHash, []byte(req.Password)); err != nil {
			return nil, ErrInvalidRole
		}
		return &dto.RoleResponse{Role: RoleDoctor}, nil
	default:
		return nil, invalid("role must be doctor or patient")
	}
}
