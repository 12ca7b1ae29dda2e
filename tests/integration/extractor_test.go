package integration

import (
	"AI_PROCTOR/go-backend/pkg/pb"
	"context"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"testing"
	"time"
)

// These tests expect the extraction service to be listening on localhost:50051
// and are skipped otherwise.

func TestGRPCAnalyzeFrame(t *testing.T) {
	conn, err := grpc.Dial("localhost:50051", grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("did not connect: %v", err)
	}
	defer conn.Close()

	client := pb.NewBehaviorExtractionClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req := &pb.VideoFrame{
		FrameData:      []byte("test frame data"),
		Timestamp:      time.Now().UnixMilli(),
		SequenceNumber: 1,
	}

	result, err := client.AnalyzeFrame(ctx, req)
	if err != nil {
		t.Skipf("extraction service not running: %v", err)
	}

	if result == nil {
		t.Fatalf("Result is nil")
	}

	t.Logf("Success! face=%v, gaze=%s", result.FaceDetected, result.GazeDirection)
}

func TestGRPCHealth(t *testing.T) {
	conn, err := grpc.Dial("localhost:50051", grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("did not connect: %v", err)
	}
	defer conn.Close()

	client := pb.NewBehaviorExtractionClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	status, err := client.Health(ctx, &pb.Empty{})
	if err != nil {
		t.Skipf("extraction service not running: %v", err)
	}

	if status.Status != "healthy" {
		t.Errorf("Expected healthy, got %s", status.Status)
	}

	t.Logf("Health: %+v", status)
}
