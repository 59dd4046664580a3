package snapshot

import "context"

// Collector интерфейс сборщика метрик операций со снапшотами
type Collector interface {
	ObserveSnapshotSave(key string, err error)
	ObserveSnapshotLoad(key string, err error)
}

// instrumentedStore декоратор, считающий операции Load/Save по ключам
type instrumentedStore struct {
	next      Store
	collector Collector
}

// WithMetrics оборачивает хранилище сбором метрик
func WithMetrics(next Store, collector Collector) Store {
	return &instrumentedStore{next: next, collector: collector}
}

func (s *instrumentedStore) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.next.Load(ctx, key)
	s.collector.ObserveSnapshotLoad(key, err)
	return data, err
}

func (s *instrumentedStore) Save(ctx context.Context, key string, data []byte) error {
	err := s.next.Save(ctx, key, data)
	s.collector.ObserveSnapshotSave(key, err)
	return err
}
