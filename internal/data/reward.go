package data

import (
	"context"
	stderrors "errors"
	"io/fs"

	"fortune/internal/biz"
	"fortune/internal/biz/reward"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
)

const (
	ReasonNotFound = "REWARD_CONFIG_NOT_FOUND"
	ReasonInvalid  = "REWARD_CONFIG_INVALID"
)

type rewardRepo struct {
	data *Data
	log  *log.Helper
}

func NewRewardRepo(data *Data, logger log.Logger) biz.RewardRepo {
	return &rewardRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

// LoadRewards 读取并解析奖励配置，只读一次，不重试
func (r *rewardRepo) LoadRewards(ctx context.Context) (*reward.Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.data == nil || r.data.fsys == nil {
		return nil, errors.NotFound(ReasonNotFound, "reward resource not configured")
	}
	raw, err := fs.ReadFile(r.data.fsys, r.data.name)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.NotFound(ReasonNotFound, "reward resource "+r.data.name+" not found").WithCause(err)
		}
		return nil, errors.Newf(500, ReasonInvalid, "read %s: %v", r.data.name, err).WithCause(err)
	}
	cfg, err := reward.Decode(raw)
	if err != nil {
		return nil, errors.Newf(500, ReasonInvalid, "%s: %v", r.data.name, err).WithCause(err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Newf(500, ReasonInvalid, "%s: %v", r.data.name, err).WithCause(err)
	}
	r.log.Debugf("loaded %s: coins=%d rewards=%d", r.data.name, cfg.Coins, len(cfg.Rewards))
	return cfg, nil
}
