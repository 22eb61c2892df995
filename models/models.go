package models

// All returns every model managed by this service, in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Course{},
		&Enrollment{},
		&Certificate{},
		&Discussion{},
	}
}
