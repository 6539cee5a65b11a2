// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ioc

import (
	"context"
	"database/sql"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/marketplace/internal/pkg/database"
	"github.com/ego-component/egorm"
	_ "github.com/go-sql-driver/mysql"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

type dbSetupConfig struct {
	// 两次探测之间的最大间隔
	MaxInterval time.Duration `yaml:"maxInterval"`
	MaxRetries  int32         `yaml:"maxRetries"`
	PingTimeout time.Duration `yaml:"pingTimeout"`
}

// InitDB 订单 钱包 提现都依赖数据库事务, 数据库不可用时直接启动失败
func InitDB() *egorm.Component {
	cfg := dbSetupConfig{MaxInterval: 10 * time.Second, MaxRetries: 10, PingTimeout: 5 * time.Second}
	if err := econf.UnmarshalKey("mysql.setup", &cfg); err != nil {
		panic(err)
	}
	WaitForDBSetup(econf.GetString("mysql.dsn"), cfg)
	db := egorm.Load("mysql").Build()
	err := database.NewGormTracingPlugin().Initialize(db)
	if err != nil {
		panic(err)
	}
	return db
}

// WaitForDBSetup 本地用 docker compose 启动时 MySQL 往往比应用慢
func WaitForDBSetup(dsn string, cfg dbSetupConfig) {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		panic(err)
	}
	defer sqlDB.Close()
	strategy, err := retry.NewExponentialBackoffRetryStrategy(time.Second, cfg.MaxInterval, cfg.MaxRetries)
	if err != nil {
		panic(err)
	}
	for {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.PingTimeout)
		err = sqlDB.PingContext(ctx)
		cancel()
		if err == nil {
			return
		}
		next, ok := strategy.Next()
		if !ok {
			panic("WaitForDBSetup 重试失败......")
		}
		elog.DefaultLogger.Warn("等待数据库就绪", elog.FieldErr(err), elog.FieldCost(next))
		time.Sleep(next)
	}
}
