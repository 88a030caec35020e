package core

// DemoProcessSet returns a small mixed dataset with staggered arrivals,
// useful for trying out the simulator without entering data.
func DemoProcessSet() []Process {
	return []Process{
		{PID: 1, Arrival: 0, Burst: 7, Priority: 3},
		{PID: 2, Arrival: 2, Burst: 4, Priority: 1},
		{PID: 3, Arrival: 4, Burst: 1, Priority: 4},
		{PID: 4, Arrival: 5, Burst: 4, Priority: 2},
		{PID: 5, Arrival: 6, Burst: 6, Priority: 5},
	}
}
