package engine

import "testing"

func TestTopPerformerPicksMaximum(t *testing.T) {
	metrics := []MemberMetric{
		{Member: mkMember("An"), ReferralCount: 2},
		{Member: mkMember("Bình"), ReferralCount: 5},
		{Member: mkMember("Chi"), ReferralCount: 3},
	}

	got := TopPerformer(metrics, MetricReferrals)
	if got == nil {
		t.Fatal("Phải có người dẫn đầu")
	}
	if got.Member.Name != "Bình" {
		t.Errorf("Người dẫn đầu phải là Bình, nhận %s", got.Member.Name)
	}
}

func TestTopPerformerTieBreakByListOrder(t *testing.T) {
	metrics := []MemberMetric{
		{Member: mkMember("An"), ReferralCount: 4},
		{Member: mkMember("Bình"), ReferralCount: 4},
		{Member: mkMember("Chi"), ReferralCount: 1},
	}

	// Gọi lặp lại nhiều lần phải luôn chọn người đứng trước trong danh sách
	for i := 0; i < 10; i++ {
		got := TopPerformer(metrics, MetricReferrals)
		if got == nil {
			t.Fatal("Phải có người dẫn đầu")
		}
		if got.Member.Name != "An" {
			t.Fatalf("Hòa điểm phải chọn người đứng trước trong danh sách: muốn An, nhận %s", got.Member.Name)
		}
	}
}

func TestTopPerformerAllZeroReturnsNil(t *testing.T) {
	metrics := []MemberMetric{
		{Member: mkMember("An")},
		{Member: mkMember("Bình")},
	}

	if got := TopPerformer(metrics, MetricVisitors); got != nil {
		t.Errorf("Mọi thành viên 0 điểm thì không có người dẫn đầu, nhận %s", got.Member.Name)
	}
}

func TestTopPerformerClosedBusinessRanksByAmount(t *testing.T) {
	metrics := []MemberMetric{
		{Member: mkMember("An"), ClosedBusinessCount: 3, ClosedBusinessCents: 30000},
		{Member: mkMember("Bình"), ClosedBusinessCount: 1, ClosedBusinessCents: 500000},
	}

	got := TopPerformer(metrics, MetricClosedBusiness)
	if got == nil {
		t.Fatal("Phải có người dẫn đầu")
	}
	if got.Member.Name != "Bình" {
		t.Errorf("Xếp hạng giao dịch chốt theo tổng tiền, không theo số giao dịch: muốn Bình, nhận %s", got.Member.Name)
	}
}
