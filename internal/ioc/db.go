package ioc

import (
	"context"
	"database/sql"
	"time"

	"gitee.com/flycash/publish-gateway/internal/pkg/retry"
	"gitee.com/flycash/publish-gateway/internal/repository/dao"
	"github.com/ego-component/egorm"
	_ "github.com/go-sql-driver/mysql"
	"github.com/gotomicro/ego/core/econf"
)

func InitDB() *egorm.Component {
	WaitForDBSetup(econf.GetString("mysql.dsn"))
	db := egorm.Load("mysql").Build()
	if err := dao.InitTables(db); err != nil {
		panic(err)
	}
	return db
}

// WaitForDBSetup 容器启动时 MySQL 可能还没有就绪
func WaitForDBSetup(dsn string) {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		panic(err)
	}
	defer sqlDB.Close()

	strategy, err := retry.NewStrategy(retry.Config{
		Type: "exponential",
		ExponentialBackoff: &retry.ExponentialBackoffConfig{
			InitialInterval: time.Second,
			MaxInterval:     10 * time.Second,
			MaxRetries:      10,
		},
	})
	if err != nil {
		panic(err)
	}
	const timeout = 5 * time.Second
	err = retry.WaitFor(context.Background(), strategy, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return sqlDB.PingContext(ctx)
	})
	if err != nil {
		panic(err)
	}
}
