// Package grpcserver adapts OrderService to the gRPC surface.
package grpcserver

import (
	"context"
	"log"

	"floe/api/pb"
	"floe/domain/orderbook"
	"floe/service"
)

type Server struct {
	pb.UnimplementedOrderFeedServer
	svc *service.OrderService
}

func NewServer(svc *service.OrderService) *Server {
	return &Server{svc: svc}
}

// -------------------- Commands --------------------

func (s *Server) SubmitOrder(
	ctx context.Context,
	req *pb.SubmitOrderRequest,
) (*pb.SubmitOrderResponse, error) {
	side := toSide(req.Side)

	seq, fills, err := s.svc.Submit(req.Id, side, req.Price, req.Quantity, req.Peak)
	if err != nil {
		return nil, err
	}

	log.Printf(
		"[grpc] SubmitOrder id=%d side=%v price=%d qty=%d fills=%d seq=%d",
		req.Id, side, req.Price, req.Quantity, len(fills), seq,
	)

	resp := &pb.SubmitOrderResponse{
		Seq:   seq,
		Fills: make([]*pb.Fill, 0, len(fills)),
	}
	for _, f := range fills {
		resp.Fills = append(resp.Fills, &pb.Fill{
			TakerId:  f.TakerID,
			MakerId:  f.MakerID,
			Quantity: f.Quantity,
			Price:    f.Price,
		})
	}
	return resp, nil
}

// -------------------- Queries --------------------

func (s *Server) GetBook(
	ctx context.Context,
	req *pb.BookRequest,
) (*pb.BookResponse, error) {
	view := s.svc.Snapshot()

	return &pb.BookResponse{
		Buys:  toEntries(view.BuyOrders),
		Sells: toEntries(view.SellOrders),
	}, nil
}

// -------------------- Converters --------------------

func toEntries(orders []orderbook.Order) []*pb.BookEntry {
	out := make([]*pb.BookEntry, 0, len(orders))
	for _, o := range orders {
		// Hidden reserves stay hidden; only the visible slice goes out.
		out = append(out, &pb.BookEntry{
			Id:      o.Key.ID,
			Side:    fromSide(o.Key.Side),
			Price:   o.Key.Price,
			Visible: o.Visible,
		})
	}
	return out
}

func toSide(s pb.Side) orderbook.Side {
	if s == pb.Side_SIDE_SELL {
		return orderbook.Sell
	}
	return orderbook.Buy
}

func fromSide(s orderbook.Side) pb.Side {
	if s == orderbook.Sell {
		return pb.Side_SIDE_SELL
	}
	return pb.Side_SIDE_BUY
}
