package dependencies

import (
	"testing"

	"github.com/stretchr/testify/assert"

	appConfig "github.com/Xushengqwer/member_service/config"
)

func TestResolvePool(t *testing.T) {
	shared := appConfig.MySQLConfig{SharedMaxIdleConns: 5, SharedMaxOpenConns: 20, SharedConnMaxLifetime: 300}

	assert.Equal(t, poolSettings{MaxIdle: 5, MaxOpen: 20, Lifetime: 300}, resolvePool(shared, appConfig.SourceConfig{}))

	idle, lifetime := 2, 60
	got := resolvePool(shared, appConfig.SourceConfig{MaxIdleConns: &idle, ConnMaxLifetime: &lifetime})
	assert.Equal(t, poolSettings{MaxIdle: 2, MaxOpen: 20, Lifetime: 60}, got)
}
