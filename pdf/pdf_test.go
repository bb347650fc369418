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

package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rushi-tekdi/ulp-bff/core"
)

func TestConverter_Configure(t *testing.T) {
	t.Run("ok - defaults", func(t *testing.T) {
		converter := New()

		assert.NoError(t, converter.Configure(core.ServerConfig{}))
	})
	t.Run("error - zero timeout", func(t *testing.T) {
		converter := New()
		converter.config.Timeout = 0

		assert.EqualError(t, converter.Configure(core.ServerConfig{}), "pdf.timeout must be positive")
	})
}
