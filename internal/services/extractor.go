package services

import (
	"AI_PROCTOR/go-backend/internal/models"
	pb "AI_PROCTOR/go-backend/pkg/pb"
	"context"
	"fmt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
	"log"
	"time"
)

// Extractor turns one compressed frame into an observation. The production
// implementation is the gRPC extraction service; tests substitute their own.
type Extractor interface {
	AnalyzeFrame(ctx context.Context, frameData []byte, sequence int32) (models.Observation, error)
}

type ExtractorClient struct {
	conn   *grpc.ClientConn
	client pb.BehaviorExtractionClient
	url    string
}

func NewExtractorClient(url string) (*ExtractorClient, error) {
	log.Printf("Connecting to extraction service gRPC at %s", url)

	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(50*1024*1024),
			grpc.MaxCallSendMsgSize(50*1024*1024),
		),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                10 * time.Second,
			Timeout:             3 * time.Second,
			PermitWithoutStream: true,
		}),
	}

	conn, err := grpc.Dial(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not connect to extraction service at %s: %s", url, err)
	}

	client := pb.NewBehaviorExtractionClient(conn)
	log.Printf("Connected to extraction service at %s", url)

	return &ExtractorClient{
		conn:   conn,
		client: client,
		url:    url,
	}, nil
}

func (ec *ExtractorClient) AnalyzeFrame(ctx context.Context, frameData []byte, sequence int32) (models.Observation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	frame := &pb.VideoFrame{
		FrameData:      frameData,
		Timestamp:      time.Now().UnixMilli(),
		SequenceNumber: sequence,
	}

	obs, err := ec.client.AnalyzeFrame(ctx, frame)
	if err != nil {
		return models.Observation{}, fmt.Errorf("could not analyze frame: %w", err)
	}
	return observationFromPB(obs), nil
}

func (ec *ExtractorClient) HealthCheck() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := ec.client.Health(ctx, &pb.Empty{})
	return err == nil
}

func (ec *ExtractorClient) Close() error {
	if ec.conn != nil {
		return ec.conn.Close()
	}
	return nil
}

func observationFromPB(o *pb.Observation) models.Observation {
	return models.Observation{
		LookingAway:         o.LookingAway,
		GazeDirection:       o.GazeDirection,
		FaceDetected:        o.FaceDetected,
		SuspiciousMovements: int(o.SuspiciousMovements),
		HeadMovement:        o.HeadMovement,
		PersonStoodUp:       o.PersonStoodUp,
		Brightness:          float64(o.Brightness),
		Contrast:            float64(o.Contrast),
	}
}
