package store

// 注意：此包只包含实现，接口定义在 core 包。
// 使用 core.ClosetStore、core.PreferenceStore、core.RatingStore 和 core.Store 接口。
//
// 示例：
//   var closet core.ClosetStore = NewMemoryStore()
//   var cache core.Store = NewMemoryStore()
