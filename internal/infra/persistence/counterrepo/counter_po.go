package counterrepo

import (
	"time"

	"github.com/sahilkruz07/sqlautomation/internal/biz/sequence"
)

// CounterPo 计数器表
// counter_type为主键，不使用自增ID，保证upsert自增语义简单可靠
type CounterPo struct {
	CounterType  sequence.CounterType `gorm:"column:counter_type;primaryKey;size:50"`
	CounterValue uint64               `gorm:"column:counter_value;not null;default:0"`
	UpdatedAt    time.Time            `gorm:"autoUpdateTime"`
}

func (CounterPo) TableName() string {
	return "counter_master"
}
