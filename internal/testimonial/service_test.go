package testimonial

import "testing"

func TestService_Clients(t *testing.T) {
	svc := NewService(NewInMemoryRepository([]Testimonial{
		{ID: 1, Name: "Ann", Company: "Acme"},
		{ID: 2, Name: "Bob", Company: "acme "},
		{ID: 3, Name: "Cid"},
		{ID: 4, Name: "Dee", Company: "Globex"},
	}))
	n, err := svc.Clients()
	if err != nil {
		t.Fatalf("clients failed: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 clients, got %d", n)
	}
}

func TestService_ListBestRatedFirst(t *testing.T) {
	svc := NewService(NewInMemoryRepository([]Testimonial{
		{ID: 1, Name: "Ann", Rating: 4, CreatedAt: "2024-01-01T00:00:00Z"},
		{ID: 2, Name: "Bob", Rating: 5, CreatedAt: "2023-01-01T00:00:00Z"},
		{ID: 3, Name: "Cid", Rating: 4, CreatedAt: "2024-06-01T00:00:00Z"},
	}))
	list, err := svc.List("")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if list[0].ID != 2 || list[1].ID != 3 || list[2].ID != 1 {
		t.Fatalf("unexpected order %+v", list)
	}
}
