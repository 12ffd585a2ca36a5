package db

import (
	"github.com/todaytheofficial/neotube/cmd/model"
	"github.com/todaytheofficial/neotube/config"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init opens the MySQL connection and migrates the schema.
func Init() {
	var err error
	dsn := config.ConfigInfo.Mysql.Username + ":" + config.ConfigInfo.Mysql.Password +
		"@tcp(" + config.ConfigInfo.Mysql.Addr + ")/" + config.ConfigInfo.Mysql.Database +
		"?charset=utf8mb4&parseTime=True&loc=Local"
	DB, err = gorm.Open(mysql.Open(dsn),
		&gorm.Config{
			PrepareStmt:            true,
			SkipDefaultTransaction: true,
		},
	)
	if err != nil {
		panic(err)
	}
	if err = Migrate(DB); err != nil {
		panic(err)
	}
}

// Migrate creates the tables. Split out so tests can run it against their own
// database handle.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&model.User{},
		&model.Video{},
		&model.VideoLike{},
		&model.VideoDislike{},
		&model.Comment{},
	)
}
