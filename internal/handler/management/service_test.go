// Copyright 2025 The Vitrine Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package management

import (
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"

	"github.com/vitrine-io/vitrine/internal/config"
	"github.com/vitrine-io/vitrine/internal/handler/fxlcm"
	"github.com/vitrine-io/vitrine/internal/x/testsupport"
)

type ServiceTestSuite struct {
	suite.Suite

	lcm  *fxlcm.LifecycleManager
	reg  *prometheus.Registry
	addr string
}

func (suite *ServiceTestSuite) SetupTest() {
	port, err := testsupport.GetFreePort()
	suite.Require().NoError(err)

	conf := &config.Configuration{
		Management: config.ManagementConfig{
			Host: "127.0.0.1",
			Port: port,
			Timeout: config.Timeout{
				Read:  time.Second,
				Write: time.Second,
				Idle:  time.Second,
			},
		},
		Metrics: config.MetricsConfig{Enabled: true},
	}

	suite.reg = prometheus.NewRegistry()
	suite.addr = fmt.Sprintf("http://127.0.0.1:%d", port)
	suite.lcm = newLifecycleManager(conf, suite.reg, suite.reg, zerolog.Nop())

	suite.Require().NoError(suite.lcm.Start(suite.T().Context()))
}

func (suite *ServiceTestSuite) TearDownTest() {
	suite.Require().NoError(suite.lcm.Stop(suite.T().Context()))
}

func TestServiceTestSuite(t *testing.T) {
	t.Parallel()

	suite.Run(t, new(ServiceTestSuite))
}

func (suite *ServiceTestSuite) get(path string) (*http.Response, string) {
	var resp *http.Response

	suite.Require().Eventually(func() bool {
		req, err := http.NewRequestWithContext(suite.T().Context(), http.MethodGet, suite.addr+path, nil)
		if err != nil {
			return false
		}

		resp, err = http.DefaultClient.Do(req)

		return err == nil
	}, 2*time.Second, 20*time.Millisecond)

	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	suite.Require().NoError(err)

	return resp, string(payload)
}

func (suite *ServiceTestSuite) TestHealthRequest() {
	// WHEN
	resp, payload := suite.get(EndpointHealth)

	// THEN
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.JSONEq(`{ "status": "ok" }`, payload)
}

func (suite *ServiceTestSuite) TestMetricsRequest() {
	// GIVEN
	suite.get(EndpointHealth)

	// WHEN
	resp, payload := suite.get(EndpointMetrics)

	// THEN
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Contains(payload, "promhttp_metric_handler_requests_total")
	suite.NotContains(payload, `code="200",method="GET",service="management"`)
}

func (suite *ServiceTestSuite) TestUnknownEndpoint() {
	// WHEN
	resp, _ := suite.get("/foo")

	// THEN
	suite.Equal(http.StatusNotFound, resp.StatusCode)
}
