package ioc

import (
	"fmt"

	prodioc "gitee.com/flycash/publish-gateway/internal/ioc"
	"gitee.com/flycash/publish-gateway/internal/repository/dao"
	"github.com/ego-component/egorm"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const dsn = "root:root@tcp(localhost:13316)/publish_gateway?charset=utf8mb4&collation=utf8mb4_general_ci&parseTime=True&loc=Local&timeout=1s&readTimeout=3s&writeTimeout=3s&multiStatements=true"

func InitDB() *egorm.Component {
	prodioc.WaitForDBSetup(dsn)
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		panic(fmt.Errorf("数据库连接失败: %w", err))
	}
	return db
}

func InitDBAndTables() *egorm.Component {
	db := InitDB()
	if err := dao.InitTables(db); err != nil {
		panic(err)
	}
	return db
}
