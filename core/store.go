package core

import "context"

// 本文件定义领域层的存储接口，由基础设施层（store、store/mongo）实现。
//
// 设计原则：
//   - 定义在领域层（core），遵循依赖倒置：领域层定义接口，基础设施层实现
//   - 接口刻意窄化为只读快照读取——引擎对衣柜/偏好/历史只读不写
//   - 所有实现必须可安全并发调用

// ClosetStore 提供某位用户的全部衣柜衣物。
type ClosetStore interface {
	// ListItemsOwnedBy 返回 userID 名下的全部衣物
	ListItemsOwnedBy(ctx context.Context, userID string) ([]ClothingItem, error)
}

// PreferenceStore 提供用户风格/配色偏好。
// 偏好不存在时返回 (nil, nil)：缺失是正常状态，由引擎补默认值。
type PreferenceStore interface {
	GetPreferences(ctx context.Context, userID string) (*Preferences, error)
}

// RatingStore 提供历史穿搭评分记录。
type RatingStore interface {
	// ListRatedOutfits 返回某位用户的已评分穿搭（Rating 非 nil）
	ListRatedOutfits(ctx context.Context, userID string) ([]RatedOutfit, error)

	// ListAllRatedOutfits 返回跨用户评分池，按时间倒序、至多 limit 条。
	// 池上限（默认 3000）是控制最坏延迟的采样护栏。
	ListAllRatedOutfits(ctx context.Context, limit int) ([]RatedOutfit, error)
}

// ImageResolver 将衣物图片文件名解析为绝对 URL。
// 仅用于输出装饰：解析失败不影响排序逻辑，URL 置空即可。
type ImageResolver interface {
	ResolveURL(filename string) string
}

// Store 是通用 KV 存储接口，用于推荐结果缓存等旁路场景。
//
// 实现：
//   - store.MemoryStore（测试/开发）
//   - store.RedisStore（生产常用）
type Store interface {
	// Name 返回存储后端名称（用于日志/监控）
	Name() string

	// Get 读取单个 key 的值
	Get(ctx context.Context, key string) ([]byte, error)

	// Set 写入单个 key-value，ttl 单位为秒（可选）
	Set(ctx context.Context, key string, value []byte, ttl ...int) error

	// Delete 删除单个 key
	Delete(ctx context.Context, key string) error

	// Close 关闭连接/释放资源
	Close() error
}

// Store 错误定义（使用统一的 DomainError）
var (
	// ErrStoreNotFound 表示 key 不存在
	ErrStoreNotFound = NewDomainError(ModuleStore, ErrorCodeNotFound, "store: key not found")
)

// IsStoreNotFound 检查错误是否为 key 不存在
func IsStoreNotFound(err error) bool {
	if err == nil {
		return false
	}
	domainErr := GetDomainError(err)
	if domainErr != nil && domainErr.Module == ModuleStore {
		return domainErr.Code == ErrorCodeNotFound
	}
	return false
}
