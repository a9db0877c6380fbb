package monitor_gateway

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/warp-contracts/txinfo/src/utils/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestAverageRequests(t *testing.T) {
	conf := config.Default()
	conf.Gateway.MonitorHistorySize = 3
	monitor := NewMonitor(conf)

	for _, requests := range []uint64{10, 20, 40, 70} {
		monitor.Report.Gateway.State.PriceRequests.Store(requests)
		require.NoError(t, monitor.monitorRequests())
	}

	// Window holds 20, 40, 70
	require.Equal(t, 3, monitor.RequestCounts.Len())
	require.Equal(t, 25.0, monitor.Report.Gateway.State.AverageRequestsPerMinute.Load())
}

func TestAverageRequestsSingleSample(t *testing.T) {
	monitor := NewMonitor(config.Default())

	monitor.Report.Gateway.State.TransactionRequests.Store(30)
	require.NoError(t, monitor.monitorRequests())
	require.Equal(t, 0.0, monitor.Report.Gateway.State.AverageRequestsPerMinute.Load())

	monitor.Report.Gateway.State.TransactionRequests.Store(45)
	require.NoError(t, monitor.monitorRequests())
	require.Equal(t, 15.0, monitor.Report.Gateway.State.AverageRequestsPerMinute.Load())
}

func TestIsOK(t *testing.T) {
	monitor := NewMonitor(config.Default())
	require.True(t, monitor.IsOK())

	monitor.Report.Gateway.State.StatusRequests.Store(10)
	monitor.Report.Gateway.Errors.Transport.Store(4)
	require.True(t, monitor.IsOK())

	monitor.Report.Gateway.Errors.Transport.Store(5)
	require.False(t, monitor.IsOK())
}

func TestCollector(t *testing.T) {
	monitor := NewMonitor(config.Default())
	monitor.Report.Gateway.Errors.Protocol.Store(3)

	require.Equal(t, 11, testutil.CollectAndCount(monitor.GetPrometheusCollector()))
}

func TestOnGetState(t *testing.T) {
	gin.SetMode(gin.TestMode)
	monitor := NewMonitor(config.Default())
	monitor.Report.Gateway.State.TransactionRequests.Store(2)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/state", nil)
	monitor.OnGetState(c)

	require.Equal(t, http.StatusOK, w.Code)

	var out map[string]map[string]map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.EqualValues(t, 2, out["gateway"]["state"]["transaction_requests"])
}
