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

package core

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

type status struct {
	system    *System
	startTime time.Time
}

// NewStatusEngine creates a new Engine that exposes the /status and /status/diagnostics endpoints.
func NewStatusEngine(system *System) Engine {
	return &status{
		system:    system,
		startTime: time.Now(),
	}
}

func (s *status) Name() string {
	return "Status"
}

func (s *status) Routes(router EchoRouter) {
	router.GET("/status/diagnostics", s.diagnosticsOverview)
	router.GET("/status", statusOK)
}

func (s *status) diagnosticsOverview(ctx echo.Context) error {
	return ctx.String(http.StatusOK, s.diagnosticsSummaryAsText())
}

func (s *status) diagnosticsSummaryAsText() string {
	var lines []string
	for _, diagnostic := range s.system.Diagnostics() {
		lines = append(lines, fmt.Sprintf("%s: %s", diagnostic.Name(), diagnostic.String()))
	}
	return strings.Join(lines, "\n")
}

// Diagnostics returns list of DiagnosticResult for the StatusEngine.
// The results are a list of all registered engines and the uptime of the service.
func (s *status) Diagnostics() []DiagnosticResult {
	return []DiagnosticResult{
		&GenericDiagnosticResult{Title: "registered_engines", Value: strings.Join(s.listAllEngines(), ",")},
		&GenericDiagnosticResult{Title: "uptime", Value: time.Since(s.startTime).Truncate(time.Second)},
	}
}

func (s *status) listAllEngines() []string {
	var names []string
	s.system.VisitEngines(func(engine Engine) {
		if m, ok := engine.(Named); ok {
			names = append(names, m.Name())
		}
	})
	return names
}

// statusOK returns 200 OK with a "OK" body
func statusOK(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "OK")
}
