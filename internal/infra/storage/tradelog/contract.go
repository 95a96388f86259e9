package tradelog

import "github.com/m04kA/SMC-QueueSkipService/pkg/dbmetrics"

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
