/*
 * ULP BFF
 * Copyright (C) 2023 ULP community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 *
 */

package sso

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rushi-tekdi/ulp-bff/registry"
)

// RegisterRequest is the profile of a student to be registered across the IdP, DID service and Registry.
type RegisterRequest struct {
	StudentID   string `json:"studentId"`
	AadhaarID   string `json:"aadhaarId"`
	StudentName string `json:"studentName"`
	SchoolName  string `json:"schoolName"`
	SchoolID    string `json:"schoolId"`
	PhoneNo     string `json:"phoneNo"`
}

// RegisterStudent creates a student identity: service token, DID, IdP account, Registry record.
// Every step failure short-circuits the remaining steps with its own status tag. A Registry
// acknowledgement that does not report SUCCESSFUL counts as a duplicate registration.
func (s *Service) RegisterStudent(ctx context.Context, user RegisterRequest) Outcome {
	workflowID := newWorkflowID()

	clientToken, err := s.tokens.ClientToken(ctx)
	if err != nil {
		return s.done("register", workflowID, failure(http.StatusUnauthorized, StatusClientTokenError,
			"Bad Request for Keycloak Client Token", err.Error()))
	}

	did, err := s.dids.Generate(ctx, user.StudentID)
	if err != nil {
		return s.done("register", workflowID, failure(http.StatusBadRequest, StatusDidGenerateError,
			"DID Generate Failed. Try Again.", err.Error()))
	}

	if err := s.tokens.CreateUser(ctx, clientToken.AccessToken, user.StudentID, s.config.StudentPassword); err != nil {
		return s.done("register", workflowID, failure(http.StatusBadRequest, StatusKeycloakRegisterDuplicate,
			"Student Already Registered in Keycloak", err.Error()))
	}

	ack, err := s.registry.Invite(ctx, registry.EntityStudent, registry.StudentDetail{
		Did:             did,
		AadhaarID:       user.AadhaarID,
		StudentName:     user.StudentName,
		SchoolName:      user.SchoolName,
		SchoolID:        user.SchoolID,
		StudentSchoolID: user.StudentID,
		PhoneNo:         user.PhoneNo,
	})
	if err != nil {
		return s.done("register", workflowID, failure(http.StatusBadRequest, StatusRegisterError,
			"Sunbird RC Student Registration Failed", err.Error()))
	}
	if !ack.Successful() {
		return s.done("register", workflowID, failure(http.StatusBadRequest, StatusRegisterDuplicate,
			"Student Already Registered in Sunbird RC", json.RawMessage(ack.Raw)))
	}
	return s.done("register", workflowID, success(http.StatusCreated, StatusRegistered,
		"Student Account Created in Keycloak and Registered in Sunbird RC", json.RawMessage(ack.Raw)))
}

// Login authenticates a student against the IdP and resolves the matching Registry record.
// Exactly one Registry match is required; zero or multiple matches are both "not found".
func (s *Service) Login(ctx context.Context, username string, password string) Outcome {
	workflowID := newWorkflowID()

	userToken, err := s.tokens.UserToken(ctx, username, password)
	if err != nil {
		return s.done("login", workflowID, failure(http.StatusUnauthorized, StatusInvalidCredentials,
			err.Error(), nil))
	}

	records, err := s.registry.Search(ctx, registry.EntityStudent, map[string]string{registry.FieldStudentSchoolID: username})
	if err != nil {
		return s.done("login", workflowID, failure(http.StatusNotImplemented, StatusSearchError,
			"Sunbird RC Student Search Failed", err.Error()))
	}
	if len(records) != 1 {
		return s.done("login", workflowID, failure(http.StatusNotFound, StatusNoFound,
			"Student Not Found in Sunbird RC", nil))
	}
	return s.done("login", workflowID, success(http.StatusOK, StatusLoginSuccess, "Login Success", map[string]interface{}{
		"userData": records,
		"token":    userToken.AccessToken,
	}))
}

// GetDID resolves the DID of a student by subject key.
func (s *Service) GetDID(ctx context.Context, studentID string) Outcome {
	workflowID := newWorkflowID()

	record, err := s.findStudent(ctx, studentID)
	if err != nil {
		return s.done("get_did", workflowID, failure(http.StatusNotImplemented, StatusSearchError,
			"Sunbird RC Student Search Failed", nil))
	}
	if record == nil {
		return s.done("get_did", workflowID, failure(http.StatusNotFound, StatusNoDidFound,
			"Student DID not Found in Sunbird RC", nil))
	}
	return s.done("get_did", workflowID, success(http.StatusOK, StatusDidSuccess, "DID Found", record.Did()))
}

// findStudent searches students by subject key, requiring exactly one match.
// It returns (nil, nil) when the search succeeded but did not match exactly one record.
func (s *Service) findStudent(ctx context.Context, studentID string) (registry.Record, error) {
	records, err := s.registry.Search(ctx, registry.EntityStudent, map[string]string{registry.FieldStudentSchoolID: studentID})
	if err != nil {
		return nil, err
	}
	if len(records) != 1 {
		return nil, nil
	}
	return records[0], nil
}
