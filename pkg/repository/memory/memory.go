package memory

import (
	"github.com/standup-lab/standup/pkg/domain/interfaces"
)

// Memory is an in-memory repository for development and tests. Uniqueness
// checks run under the write lock, so the check and the insert are atomic.
type Memory struct {
	users *userRepository
	logs  *dailyLogRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		users: newUserRepository(),
		logs:  newDailyLogRepository(),
	}
}

func (m *Memory) User() interfaces.UserRepository {
	return m.users
}

func (m *Memory) DailyLog() interfaces.DailyLogRepository {
	return m.logs
}

func (m *Memory) Close() error {
	return nil
}
