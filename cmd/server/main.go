package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"

	"floe/api/grpcserver"
	"floe/api/pb"
	"floe/domain/orderbook"
	"floe/infra/kafka"
	"floe/infra/outbox"
	"floe/infra/sequence"
	"floe/infra/wal"
	"floe/jobs/broadcaster"
	"floe/jobs/depth"
	"floe/service"
	"floe/snapshot"
)

func main() {
	var (
		walDir      = envOr("FLOE_WAL_DIR", "./wal")
		outboxDir   = envOr("FLOE_OUTBOX_DIR", "./outbox")
		snapDir     = envOr("FLOE_SNAPSHOT_DIR", "./snapshots")
		listenAddr  = envOr("FLOE_LISTEN", ":50051")
		brokersCSV  = envOr("FLOE_KAFKA_BROKERS", "localhost:9092")
		fillsTopic  = envOr("FLOE_FILLS_TOPIC", "floe.fills")
		depthTopic  = envOr("FLOE_DEPTH_TOPIC", "floe.depth")
	)
	brokers := []string{brokersCSV}

	// ---------------- Entry WAL ----------------

	entryWAL, err := wal.Open(wal.Config{
		Dir:         walDir,
		SegmentSize: 2 * 1024 * 1024,
	})
	if err != nil {
		log.Fatalf("entry WAL init failed: %v", err)
	}
	defer entryWAL.Close()

	// ---------------- Fill outbox ----------------

	box, err := outbox.Open(outboxDir)
	if err != nil {
		log.Fatalf("outbox init failed: %v", err)
	}
	defer box.Close()

	// ---------------- Domain ----------------

	seqGen := sequence.New(0)
	book := orderbook.New()

	// ---------------- Recovery ----------------

	loader := &snapshot.Loader{Dir: snapDir}
	snapSeq, restored, err := loader.Load(book)
	if err != nil {
		log.Fatalf("snapshot load failed: %v", err)
	}
	if restored {
		log.Printf("restored snapshot at seq %d (%d orders)", snapSeq, book.Len())
	}

	if _, err := service.ReplayFromWAL(walDir, snapSeq, book, seqGen); err != nil {
		log.Fatalf("WAL replay failed: %v", err)
	}
	if err := service.ResumeSequencer(seqGen, box); err != nil {
		log.Fatalf("sequencer resume failed: %v", err)
	}

	// ---------------- Service ----------------

	svc := service.NewOrderService(book, seqGen, entryWAL, box)

	// ---------------- Background jobs ----------------

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bc, err := broadcaster.New(box, brokers, fillsTopic, 250*time.Millisecond)
	if err != nil {
		log.Fatalf("broadcaster init failed: %v", err)
	}
	defer bc.Close()
	go bc.Run(ctx)

	depthProducer := kafka.NewProducer(brokers, depthTopic)
	defer depthProducer.Close()
	go depth.New(svc, depthProducer, time.Second).Run(ctx)

	snapJob := service.NewSnapshotJob(svc, &snapshot.Writer{Dir: snapDir}, 30*time.Second)
	go snapJob.Run(ctx)

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", listenAddr)
	if err != nil {
		log.Fatalf("listen failed: %v", err)
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterOrderFeedServer(grpcSrv, grpcserver.NewServer(svc))

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("shutdown signal received")
		cancel()
		grpcSrv.GracefulStop()
	}()

	fmt.Printf("floe engine listening on %s\n", listenAddr)

	if err := grpcSrv.Serve(lis); err != nil {
		log.Fatalf("gRPC server exited: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
