package services

type ServiceManager struct {
	EmployeeStore EmployeeStore
}

func NewServiceManager(store EmployeeStore) *ServiceManager {
	return &ServiceManager{
		EmployeeStore: store,
	}
}
