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
	"errors"
	"net/http"

	"github.com/rushi-tekdi/ulp-bff/registry"
	"github.com/rushi-tekdi/ulp-bff/wallet"
)

func errorIsNotFound(err error) bool {
	return errors.Is(err, registry.ErrNotFound)
}

func entityFor(kind wallet.AccountKind) string {
	if kind == wallet.AccountPortal {
		return registry.EntityTeacher
	}
	return registry.EntityStudent
}

// UserData resolves the Registry record of the authenticated user for the given account kind.
func (s *Service) UserData(ctx context.Context, bearerToken string, kind wallet.AccountKind) Outcome {
	workflowID := newWorkflowID()

	info, terminal := s.introspect(ctx, bearerToken, StatusUserTokenBadRequest, StatusUserTokenError)
	if terminal != nil {
		return s.done("user_data", workflowID, *terminal)
	}

	record, err := s.registry.FindUnique(ctx, entityFor(kind), registry.FieldUsername, info.PreferredUsername)
	if err != nil {
		if errorIsNotFound(err) {
			return s.done("user_data", workflowID, failure(http.StatusNotFound, StatusSearchNoFound,
				"Sunbird RC User No Found", nil))
		}
		return s.done("user_data", workflowID, failure(http.StatusNotImplemented, StatusSearchError,
			"Sunbird RC User Search Failed", err.Error()))
	}
	return s.done("user_data", workflowID, success(http.StatusOK, StatusSearchFound,
		"Sunbird RC User Found", record))
}

// SchoolData resolves the school record by UDISE code for the authenticated user.
func (s *Service) SchoolData(ctx context.Context, bearerToken string, udise string) Outcome {
	workflowID := newWorkflowID()

	_, terminal := s.introspect(ctx, bearerToken, StatusUserTokenBadRequest, StatusUserTokenError)
	if terminal != nil {
		return s.done("school_data", workflowID, *terminal)
	}

	record, err := s.registry.FindUnique(ctx, registry.EntitySchool, registry.FieldUdiseCode, udise)
	if err != nil {
		if errorIsNotFound(err) {
			return s.done("school_data", workflowID, failure(http.StatusNotFound, StatusSearchNoFound,
				"Sunbird RC School No Found", nil))
		}
		return s.done("school_data", workflowID, failure(http.StatusNotImplemented, StatusSearchError,
			"Sunbird RC School Search Failed", err.Error()))
	}
	return s.done("school_data", workflowID, success(http.StatusOK, StatusSearchFound,
		"Sunbird RC School Found", record))
}

// StudentDetail forwards an arbitrary student search payload to the Registry.
func (s *Service) StudentDetail(ctx context.Context, searchPayload map[string]interface{}) Outcome {
	workflowID := newWorkflowID()

	result, err := s.registry.SearchRaw(ctx, registry.EntityStudent, searchPayload)
	if err != nil {
		return s.done("student_detail", workflowID, failure(http.StatusOK, "Success",
			"Unable to fetch student details!", nil))
	}
	return s.done("student_detail", workflowID, success(http.StatusOK, "Success",
		"Student details fetched successfully!", json.RawMessage(result)))
}
