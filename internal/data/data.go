package data

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"

	"fortune/internal/biz"
	"fortune/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

// ProviderSet is data providers.
var ProviderSet = wire.NewSet(NewData, NewRewardRepo)

// DefaultResource 内置奖励配置文件名
const DefaultResource = "data.json"

//go:embed assets/data.json
var assets embed.FS

// Data 资源来源：内置 FS 或外部文件目录
type Data struct {
	fsys fs.FS
	name string
}

// NewData 配置了 reward_file 时从该文件读取，否则使用内置资源
func NewData(c *conf.Data, logger log.Logger) (*Data, func(), error) {
	l := log.NewHelper(logger)
	d := &Data{name: DefaultResource}
	if c != nil && c.RewardFile != "" {
		d.fsys = os.DirFS(filepath.Dir(c.RewardFile))
		d.name = filepath.Base(c.RewardFile)
		l.Infof("reward resource: file %s", c.RewardFile)
	} else {
		sub, err := fs.Sub(assets, "assets")
		if err != nil {
			return nil, nil, err
		}
		d.fsys = sub
		l.Infof("reward resource: bundled %s", DefaultResource)
	}
	cleanup := func() {}
	return d, cleanup, nil
}

// NewDataFS 直接指定资源来源
func NewDataFS(fsys fs.FS, name string) *Data {
	return &Data{fsys: fsys, name: name}
}

var _ biz.RewardRepo = (*rewardRepo)(nil)
