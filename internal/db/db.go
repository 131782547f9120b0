package db

import (
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultDSN 指向共享缓存的内存数据库，进程退出后数据随之丢失。
const DefaultDSN = "file:remixhub?mode=memory&cache=shared"

// Open 打开数据库连接并执行自动迁移。
// dsn 为空时回退到 DefaultDSN。
func Open(dsn string) (*gorm.DB, error) {
	path := strings.TrimSpace(dsn)
	if path == "" {
		path = DefaultDSN
	}

	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// 内存库在最后一个连接关闭时被销毁，保持至少一个空闲连接
	if sqlDB, err := gdb.DB(); err == nil {
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
	}

	if err := gdb.AutoMigrate(&ModelConfig{}); err != nil {
		return nil, err
	}

	return gdb, nil
}
