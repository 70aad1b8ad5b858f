package store

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/cppla/blog/config"
	"github.com/cppla/blog/models"
	"github.com/cppla/blog/utils"
)

// Open builds the post store selected by cfg.StoreDriver. The returned
// *gorm.DB is non-nil only for the mysql driver.
func Open(cfg config.AppConfig) (PostStore, *gorm.DB, error) {
	switch cfg.StoreDriver {
	case config.StoreSeed, "":
		s, err := NewSeedStore()
		return s, nil, err
	case config.StoreFile:
		return NewFileStore(cfg.PostsFile), nil, nil
	case config.StoreMySQL:
		db, err := config.InitDatabase(&models.Post{}, &models.PageView{})
		if err != nil {
			return nil, nil, err
		}
		return NewGormStore(db), db, nil
	case config.StoreRedis:
		return NewRedisStore(utils.GetRedis(), cfg.RedisKey), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
